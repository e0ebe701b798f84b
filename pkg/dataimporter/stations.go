package dataimporter

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ctsearch/pkg/ctdf"
	"github.com/travigo/ctsearch/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const batchSize = 500

// CorrelationRow is one provider reference for an internal station
type CorrelationRow struct {
	Code         string `csv:"code"`
	Provider     string `csv:"provider"`
	ProviderCode string `csv:"provider_code"`
}

func ParseDestinationTree(reader io.Reader) ([]ctdf.DestinationTreeRecord, error) {
	var records []ctdf.DestinationTreeRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, fmt.Errorf("parse destination tree: %w", err)
	}

	util.InPlaceFilter(&records, func(record ctdf.DestinationTreeRecord) bool {
		return record.DestinationCode != "" || record.ArrivalCode != ""
	})

	return records, nil
}

// ParseCorrelations groups provider references by internal station code, in file order
func ParseCorrelations(reader io.Reader) ([]ctdf.StationCorrelation, error) {
	var rows []CorrelationRow
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return nil, fmt.Errorf("parse station correlations: %w", err)
	}

	correlations := map[string]*ctdf.StationCorrelation{}
	var codes []string

	for _, row := range rows {
		if row.Code == "" || row.Provider == "" || row.ProviderCode == "" {
			log.Warn().Str("code", row.Code).Msg("Skipping incomplete correlation row")
			continue
		}

		correlation, exists := correlations[row.Code]
		if !exists {
			correlation = &ctdf.StationCorrelation{Code: row.Code}
			correlations[row.Code] = correlation
			codes = append(codes, row.Code)
		}

		correlation.Suppliers = append(correlation.Suppliers, ctdf.ProviderStationReference(ctdf.Provider(row.Provider), row.ProviderCode))
	}

	result := make([]ctdf.StationCorrelation, 0, len(codes))
	for _, code := range codes {
		correlation := correlations[code]
		correlation.Suppliers = util.RemoveDuplicateStrings(correlation.Suppliers, nil)

		result = append(result, *correlation)
	}

	return result, nil
}

// ImportDestinationTree upserts the hierarchy rows, each row identified by all of its columns
func ImportDestinationTree(ctx context.Context, collection *mongo.Collection, records []ctdf.DestinationTreeRecord) error {
	var operations []mongo.WriteModel

	for _, record := range records {
		filter := bson.M{
			"destinationCode": record.DestinationCode,
			"destinationTree": record.DestinationTree,
			"arrivalCode":     record.ArrivalCode,
			"arrivalTree":     record.ArrivalTree,
		}

		operations = append(operations, mongo.NewReplaceOneModel().SetFilter(filter).SetReplacement(record).SetUpsert(true))
	}

	return bulkWrite(ctx, collection, operations)
}

func ImportCorrelations(ctx context.Context, collection *mongo.Collection, correlations []ctdf.StationCorrelation) error {
	var operations []mongo.WriteModel

	for _, correlation := range correlations {
		operations = append(operations, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"code": correlation.Code}).
			SetReplacement(correlation).
			SetUpsert(true))
	}

	return bulkWrite(ctx, collection, operations)
}

func bulkWrite(ctx context.Context, collection *mongo.Collection, operations []mongo.WriteModel) error {
	for start := 0; start < len(operations); start += batchSize {
		end := min(start+batchSize, len(operations))

		result, err := collection.BulkWrite(ctx, operations[start:end], &options.BulkWriteOptions{})
		if err != nil {
			return fmt.Errorf("write %s: %w", collection.Name(), err)
		}

		log.Info().
			Str("collection", collection.Name()).
			Int64("upserted", result.UpsertedCount).
			Int64("modified", result.ModifiedCount).
			Msg("Bulk write completed")
	}

	return nil
}
