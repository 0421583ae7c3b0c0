package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/postlens/postlens/internal/clients"
	"github.com/postlens/postlens/internal/models"
)

const REPORTS_TABLE_NAME = "AnalysisReports"

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertReports writes completed reports to the history table in
// chunks of 25, retrying unprocessed items with backoff.
func BatchInsertReports(ctx context.Context, reports []models.StoredReport) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(reports); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(reports) {
			end = len(reports)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, report := range reports[i:end] {
			report.TTL = time.Now().Add(24 * time.Hour).Unix()
			item, err := attributevalue.MarshalMap(report)
			if err != nil {
				slog.Error("[DynamoDB] Failed to marshal report",
					slog.String("request_id", report.RequestID),
					slog.String("error", err.Error()))
				continue
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(writeRequests) == 0 {
			continue
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				REPORTS_TABLE_NAME: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write reports: %w", err)
		}

		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[DynamoDB] Retrying unprocessed report items...",
				slog.Int("attempt", retryCount+1),
				slog.Int("remaining", len(out.UnprocessedItems[REPORTS_TABLE_NAME])))

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some reports were not written even after retries",
				slog.Int("remaining", len(out.UnprocessedItems[REPORTS_TABLE_NAME])))
		}
	}

	slog.Info("[DynamoDB] Successfully stored analysis reports",
		slog.Int("count", len(reports)))
	return nil
}

// GetAllReports scans the history table.
func GetAllReports(ctx context.Context) ([]models.StoredReport, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var reports []models.StoredReport
	input := &dynamodb.ScanInput{
		TableName: aws.String(REPORTS_TABLE_NAME),
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for reports failed: %w", err)
		}

		var page []models.StoredReport
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal report page",
				slog.String("error", err.Error()))
			return nil, err
		}
		reports = append(reports, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved reports", slog.Int("count", len(reports)))
	return reports, nil
}
