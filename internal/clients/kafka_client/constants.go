package kafka_client

import "time"

const (
	KAFKA_TOPIC_ANALYSIS_REQUESTS = "analysis-requests" // raw text submitted for asynchronous analysis
	KAFKA_TOPIC_ANALYSIS_RESULTS  = "analysis-results"  // completed analysis reports
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
