package backend

import (
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// Seed data for the in-memory backend: Gwangju offices and a few demo
// members, mirroring what the remote service returns.

func defaultOffices() []*model.Office {
	return []*model.Office{
		{
			ID:           "dong-welfare-center",
			Name:         "동구 행정복지센터",
			Category:     types.OfficeCategoryWelfare,
			RegionCode:   "29110",
			Address:      "광주광역시 동구 서남로 1",
			Phone:        "062-608-2114",
			OpeningHours: "평일 09:00~18:00",
			Latitude:     35.1462,
			Longitude:    126.9238,
		},
		{
			ID:           "seo-civil-office",
			Name:         "서구청 민원여권과",
			Category:     types.OfficeCategoryCivil,
			RegionCode:   "29140",
			Address:      "광주광역시 서구 경열로 33",
			Phone:        "062-360-7114",
			OpeningHours: "평일 09:00~18:00",
			Latitude:     35.1525,
			Longitude:    126.8915,
		},
		{
			ID:           "nam-employment-center",
			Name:         "남구 일자리지원센터",
			Category:     types.OfficeCategoryEmployment,
			RegionCode:   "29155",
			Address:      "광주광역시 남구 봉선로 1",
			Phone:        "062-607-2114",
			OpeningHours: "평일 09:00~18:00",
			Latitude:     35.1296,
			Longitude:    126.903,
		},
		{
			ID:           "buk-welfare-center",
			Name:         "북구 행정복지센터",
			Category:     types.OfficeCategoryWelfare,
			RegionCode:   "29170",
			Address:      "광주광역시 북구 우치로 77",
			Phone:        "062-410-6114",
			OpeningHours: "평일 09:00~18:00",
			Latitude:     35.175,
			Longitude:    126.9124,
		},
		{
			ID:           "gwangsan-employment",
			Name:         "광산구 고용복지플러스센터",
			Category:     types.OfficeCategoryEmployment,
			RegionCode:   "29200",
			Address:      "광주광역시 광산구 무진대로 246",
			Phone:        "062-960-3114",
			OpeningHours: "평일 09:00~18:00",
			Latitude:     35.1398,
			Longitude:    126.7935,
		},
		{
			ID:           "gwangju-hall",
			Name:         "광주광역시청 민원실",
			Category:     types.OfficeCategoryCivil,
			RegionCode:   "29000",
			Address:      "광주광역시 서구 내방로 111",
			Phone:        "062-120",
			OpeningHours: "평일 09:00~18:00",
			Notes:        "여권·민원서류 통합 창구",
			Latitude:     35.1601,
			Longitude:    126.8514,
		},
		{
			ID:           "gwangju-support-center",
			Name:         "광주 청년지원센터",
			Category:     types.OfficeCategoryWelfare,
			RegionCode:   "29110",
			Address:      "광주광역시 동구 중앙로 196",
			Phone:        "062-234-0755",
			OpeningHours: "평일 10:00~19:00",
			Notes:        "청년 주거·일자리 상담",
			Latitude:     35.141,
			Longitude:    126.929,
		},
	}
}

func defaultMembers() []*model.Member {
	return []*model.Member{
		{MemberID: "1", Name: "관리자", Role: "master"},
		{MemberID: "2", Name: "홍길동", Phone: "010-1234-5678", Role: "member"},
		{MemberID: "3", Name: "김지원", Phone: "010-9876-5432", Role: "member"},
	}
}
