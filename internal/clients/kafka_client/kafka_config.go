package kafka_client

import "github.com/postlens/postlens/config"

type KafkaConfig struct {
	Broker  string
	GroupID string
	Topic   string
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker:  config.GetEnv("KAFKA_BROKER", "localhost:29092"),
		GroupID: config.GetEnv("KAFKA_CONSUMER_GROUP_ID", "postlens-worker-group"),
		Topic:   config.GetEnv("KAFKA_CONSUMER_TOPIC", KAFKA_TOPIC_ANALYSIS_REQUESTS),
	}
}
