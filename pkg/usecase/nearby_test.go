package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

func testOffices() []*model.Office {
	return []*model.Office{
		{ID: "city-hall", Name: "광주광역시청 민원실", Category: types.OfficeCategoryCivil, Address: "광주광역시 서구 내방로 111", Latitude: 35.1601, Longitude: 126.8514},
		{ID: "seo-office", Name: "서구청 민원여권과", Category: types.OfficeCategoryCivil, Address: "광주광역시 서구 경열로 33", Latitude: 35.1525, Longitude: 126.8915},
		{ID: "dong-center", Name: "동구 행정복지센터", Category: types.OfficeCategoryWelfare, Address: "광주광역시 동구 서남로 1", Latitude: 35.1462, Longitude: 126.9238},
		{ID: "far-away", Name: "서울시청", Category: types.OfficeCategoryCivil, Address: "서울특별시 중구", Latitude: 37.5663, Longitude: 126.9779},
	}
}

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		d := usecase.HaversineKm(35.16, 126.85, 35.16, 126.85)
		gt.Number(t, d).Less(0.001)
	})

	t.Run("gwangju to seoul is roughly 270km", func(t *testing.T) {
		d := usecase.HaversineKm(35.1595454, 126.8526012, 37.5663, 126.9779)
		gt.Number(t, d).Greater(250.0)
		gt.Number(t, d).Less(290.0)
	})
}

func TestLocate(t *testing.T) {
	t.Run("offices outside the radius are excluded", func(t *testing.T) {
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			testOffices(), usecase.DefaultRadiusKm, nil)
		for _, office := range results {
			gt.String(t, office.ID).NotEqual("far-away")
			gt.Number(t, office.DistanceKm).LessOrEqual(usecase.DefaultRadiusKm)
		}
	})

	t.Run("results sort ascending by distance", func(t *testing.T) {
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			testOffices(), usecase.DefaultRadiusKm, nil)
		gt.Array(t, results).Length(2).Required()
		gt.Value(t, results[0].ID).Equal("city-hall")
		gt.Value(t, results[1].ID).Equal("seo-office")
		gt.Number(t, results[0].DistanceKm).LessOrEqual(results[1].DistanceKm)
	})

	t.Run("category filter narrows results", func(t *testing.T) {
		filter := &usecase.NearbyFilter{Categories: []types.OfficeCategory{types.OfficeCategoryWelfare}}
		results := usecase.Locate(35.1462, 126.9238, testOffices(), usecase.DefaultRadiusKm, filter)
		gt.Array(t, results).Length(1).Required()
		gt.Value(t, results[0].ID).Equal("dong-center")
	})

	t.Run("keyword filter matches name or address", func(t *testing.T) {
		filter := &usecase.NearbyFilter{Keywords: []string{"여권"}}
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			testOffices(), usecase.DefaultRadiusKm, filter)
		gt.Array(t, results).Length(1).Required()
		gt.Value(t, results[0].ID).Equal("seo-office")
	})

	t.Run("empty filter result falls back to unfiltered", func(t *testing.T) {
		filter := &usecase.NearbyFilter{Keywords: []string{"존재하지않는키워드"}}
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			testOffices(), usecase.DefaultRadiusKm, filter)
		gt.Array(t, results).Length(2)
	})

	t.Run("one office in range, one far away", func(t *testing.T) {
		offices := []*model.Office{
			{ID: "near", Name: "시청 민원실", Latitude: 35.1601, Longitude: 126.8514},
			{ID: "far", Name: "외곽 사무소", Latitude: 35.05, Longitude: 126.70},
		}
		results := usecase.Locate(35.1595, 126.8526, offices, 5, nil)
		gt.Array(t, results).Length(1).Required()
		gt.Value(t, results[0].ID).Equal("near")
		gt.Number(t, results[0].DistanceKm).Less(0.2)
	})

	t.Run("results truncate to five", func(t *testing.T) {
		offices := make([]*model.Office, 8)
		for i := range offices {
			offices[i] = &model.Office{
				ID:        string(rune('a' + i)),
				Name:      "사무소",
				Latitude:  usecase.DefaultLatitude,
				Longitude: usecase.DefaultLongitude,
			}
		}
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			offices, usecase.DefaultRadiusKm, nil)
		gt.Array(t, results).Length(5)
	})

	t.Run("nil office entries are skipped", func(t *testing.T) {
		offices := []*model.Office{nil, testOffices()[0]}
		results := usecase.Locate(usecase.DefaultLatitude, usecase.DefaultLongitude,
			offices, usecase.DefaultRadiusKm, nil)
		gt.Array(t, results).Length(1)
	})
}

func TestFormatDistance(t *testing.T) {
	gt.Value(t, usecase.FormatDistance(0.14)).Equal("140m")
	gt.Value(t, usecase.FormatDistance(0.999)).Equal("999m")
	gt.Value(t, usecase.FormatDistance(1.0)).Equal("1.0km")
	gt.Value(t, usecase.FormatDistance(1.44)).Equal("1.4km")
	gt.Value(t, usecase.FormatDistance(12.06)).Equal("12.1km")
}
