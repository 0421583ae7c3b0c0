package models

// LabelScore is one ranked entry of a classifier response.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifierRequest is the payload sent to the hosted sentiment model.
type ClassifierRequest struct {
	Inputs string `json:"inputs"`
}

// OCRRequest is the payload sent to the OCR service.
type OCRRequest struct {
	Filename string `json:"filename"`
	// Content is the base64-encoded file body.
	Content string `json:"content"`
}

// OCRResponse is the OCR service reply.
type OCRResponse struct {
	Text string `json:"text"`
}
