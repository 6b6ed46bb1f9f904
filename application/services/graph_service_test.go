package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artgraph-backend/application/ports"
	"artgraph-backend/domain/art"
	apperrors "artgraph-backend/pkg/errors"
)

func graphRow() ports.Record {
	return ports.Record{
		"artists": []any{
			map[string]any{
				"data": map[string]any{"Ar_ArtistID": int64(1), "Ar_FirstName": "Claude"},
				"id":   int64(101),
				"type": "Artist",
			},
		},
		"artworks": []any{
			map[string]any{
				"data": map[string]any{"Art_ArtworkID": int64(7), "Art_Title": "Nymphéas"},
				"id":   int64(201),
				"type": "Artwork",
			},
		},
		"relations": []any{
			map[string]any{"source": int64(101), "target": int64(201)},
		},
	}
}

func TestGetGraph_FullGraph(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return []ports.Record{graphRow()}, nil
		},
	}
	svc := NewGraphService(exec, testLogger())

	payload, err := svc.GetGraph(context.Background(), art.FilterSpec{})
	require.NoError(t, err)

	require.Len(t, payload.Artists, 1)
	assert.Equal(t, int64(101), payload.Artists[0].ID)
	assert.Equal(t, "Artist", payload.Artists[0].Type)
	assert.Equal(t, "Claude", payload.Artists[0].Data["Ar_FirstName"])

	require.Len(t, payload.Artworks, 1)
	assert.Equal(t, int64(201), payload.Artworks[0].ID)

	require.Len(t, payload.Relations, 1)
	assert.Equal(t, int64(101), payload.Relations[0].Source)
	assert.Equal(t, int64(201), payload.Relations[0].Target)

	assert.Equal(t, 1, exec.callCount(), "full graph is one round trip")
}

func TestGetGraph_BothExclusionsRejectedBeforeQuery(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewGraphService(exec, testLogger())

	_, err := svc.GetGraph(context.Background(), art.FilterSpec{
		ExcludeArtists:  true,
		ExcludeArtworks: true,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, exec.callCount(), "no query may execute")
}

func TestGetGraph_YearBoundsValidated(t *testing.T) {
	exec := &fakeExecutor{}
	svc := NewGraphService(exec, testLogger())

	_, err := svc.GetGraph(context.Background(), art.FilterSpec{
		YearMin: "1950",
		YearMax: "1900",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, exec.callCount())
}

func TestGetGraph_StoreFailureIsServerError(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewGraphService(exec, testLogger())

	_, err := svc.GetGraph(context.Background(), art.FilterSpec{})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeDatabase, appErr.Type)
}

func TestGetSubgraph_UnknownAnchorIsNotFound(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return []ports.Record{}, nil
		},
	}
	svc := NewGraphService(exec, testLogger())

	_, err := svc.GetSubgraph(context.Background(), 999, art.FilterSpec{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 1, exec.callCount(), "stops after the anchor lookup")
}

func TestGetSubgraph_AppliesGlobalFilters(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			if strings.Contains(query, "$central") {
				return []ports.Record{{"id": int64(42)}}, nil
			}
			return []ports.Record{graphRow()}, nil
		},
	}
	svc := NewGraphService(exec, testLogger())

	payload, err := svc.GetSubgraph(context.Background(), 42, art.FilterSpec{
		Nationalities: []string{"French"},
	})
	require.NoError(t, err)
	assert.Len(t, payload.Artists, 1)

	last := exec.lastCall()
	assert.Contains(t, last.query, "$nationalities")
	assert.Equal(t, []string{"French"}, last.params["nationalities"])
}

func TestGetFilterOptions_AggregatesAndParsesYears(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			switch {
			case strings.Contains(query, "AS nationality"):
				return []ports.Record{{"nationality": "Dutch"}, {"nationality": "French"}}, nil
			case strings.Contains(query, "AS medium"):
				return []ports.Record{{"medium": "Oil"}}, nil
			case strings.Contains(query, "AS movement"):
				return []ports.Record{{"movement": "Cubism"}, {"movement": "Impressionism"}}, nil
			default:
				return []ports.Record{{"min_year": "1840-11-14", "max_year": "1973-04-08"}}, nil
			}
		},
	}
	svc := NewGraphService(exec, testLogger())

	options := svc.GetFilterOptions(context.Background())

	assert.Equal(t, []string{"Dutch", "French"}, options.Nationalities)
	assert.Equal(t, []string{"Oil"}, options.Mediums)
	assert.Equal(t, []string{"Cubism", "Impressionism"}, options.Movements)
	assert.Equal(t, 1840, options.YearRange.Min)
	assert.Equal(t, 1973, options.YearRange.Max)
}

func TestGetFilterOptions_DegradesToFallbackOnFailure(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			return nil, errors.New("store unreachable")
		},
	}
	svc := NewGraphService(exec, testLogger())

	options := svc.GetFilterOptions(context.Background())

	assert.Empty(t, options.Nationalities)
	assert.Empty(t, options.Mediums)
	assert.Empty(t, options.Movements)
	assert.Equal(t, art.YearRange{Min: 1800, Max: 2024}, options.YearRange)
}

func TestGetFilterOptions_EmptyStoreKeepsFallbackRange(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, params map[string]any) ([]ports.Record, error) {
			if strings.Contains(query, "min_year") {
				return []ports.Record{{"min_year": "", "max_year": ""}}, nil
			}
			return []ports.Record{}, nil
		},
	}
	svc := NewGraphService(exec, testLogger())

	options := svc.GetFilterOptions(context.Background())

	assert.Empty(t, options.Nationalities)
	assert.Equal(t, art.YearRange{Min: 1800, Max: 2024}, options.YearRange)
}
