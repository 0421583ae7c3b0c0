package models

import "time"

// AnalysisRequest is an asynchronous analysis job consumed from Kafka.
type AnalysisRequest struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

// StoredReport is the persisted form of a completed analysis: published to
// the results topic and written to the report history table.
type StoredReport struct {
	RequestID  string         `json:"request_id" dynamodbav:"request_id"`
	TextSHA256 string         `json:"text_sha256" dynamodbav:"text_sha256"`
	SourceFile string         `json:"source_file,omitempty" dynamodbav:"source_file,omitempty"`
	Report     AnalysisReport `json:"report" dynamodbav:"report"`
	CreatedAt  time.Time      `json:"created_at" dynamodbav:"created_at,unixtime"`
	TTL        int64          `json:"-" dynamodbav:"ttl"`
}
