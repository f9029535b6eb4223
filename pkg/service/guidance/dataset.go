package guidance

import (
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

// Bundled dataset: curated guidance content shipped with the binary so the
// application stays useful when the backend is unreachable. The backend
// remains authoritative for everything it serves.

var bundledDocuments = []model.DocumentRequirement{
	{
		ID:               "resident-registration-card",
		Name:             "주민등록증 · 주민등록등본",
		IssuingAuthority: "주민센터 / 정부24",
		AvailableFormats: []string{"download", "in-person"},
		DownloadURL:      "https://www.gov.kr/portal/main",
		DownloadLabel:    "정부24",
		PreparationNotes: "세대주 여부와 전입일 확인 필수 · 공동인증서 로그인 필요",
	},
	{
		ID:               "family-relationship",
		Name:             "가족관계증명서",
		IssuingAuthority: "정부24",
		AvailableFormats: []string{"download", "in-person"},
		DownloadURL:      "https://www.gov.kr/portal/main",
		DownloadLabel:    "정부24",
		PreparationNotes: "신청인과 주민등록등본상의 가족 관계 증빙용 서류",
	},
	{
		ID:               "income-certificate",
		Name:             "소득금액증명서",
		IssuingAuthority: "국세청 홈택스",
		AvailableFormats: []string{"download", "in-person"},
		DownloadURL:      "https://www.hometax.go.kr",
		DownloadLabel:    "홈택스",
		PreparationNotes: "최근 과세연도 기준 · 근로소득원천징수영수증으로 대체 가능",
	},
	{
		ID:               "home-ownership-proof",
		Name:             "무주택 확인서(세대구성원)",
		IssuingAuthority: "주민센터 · 인터넷 등기소",
		AvailableFormats: []string{"download", "in-person"},
		DownloadLabel:    "인터넷등기소",
		PreparationNotes: "주택보유 여부 조회용. 정부24, 등기소(e-Form) 또는 주민센터 방문 발급",
	},
	{
		ID:               "sales-contract",
		Name:             "주택 매매계약서 사본",
		IssuingAuthority: "공인중개사 / 매도인",
		AvailableFormats: []string{"copy"},
		PreparationNotes: "계약금 영수증 포함. 전자계약은 PDF 출력분 제출",
	},
	{
		ID:               "lease-contract",
		Name:             "임대차 계약서 및 확정일자 증빙",
		IssuingAuthority: "공인중개사 / 임대인",
		AvailableFormats: []string{"copy"},
		DownloadURL:      "https://www.iros.go.kr",
		DownloadLabel:    "인터넷등기소",
		PreparationNotes: "전입신고 및 확정일자 스티커가 보이도록 스캔",
	},
	{
		ID:               "rent-transfer-proof",
		Name:             "월세 이체 내역 확인서",
		IssuingAuthority: "거래 은행/인터넷 뱅킹",
		AvailableFormats: []string{"download"},
		DownloadURL:      "https://obank.kbstar.com",
		DownloadLabel:    "인터넷뱅킹",
		PreparationNotes: "최근 3개월 월세 출금 계좌 내역 다운로드 후 제출",
	},
	{
		ID:               "bank-account",
		Name:             "본인 명의 통장 사본",
		IssuingAuthority: "은행",
		AvailableFormats: []string{"copy"},
		PreparationNotes: "월세 지원금·대출 실행 계좌로 사용",
	},
}

func bundledDetails() []*model.ServiceGuidanceDetail {
	return []*model.ServiceGuidanceDetail{
		{
			ID:      "first-home-loan",
			Title:   "내 생애 최초 주택 자금 대출",
			Summary: "주택도시기금이 무주택 세대주의 첫 주택 구입 자금을 연 1.55~3.10%의 고정·혼합 금리로 지원합니다.",
			EligibilityHighlights: []string{
				"만 19세 이상 무주택 세대주 (혼인 예정자 포함)",
				"부부합산 연소득 1억 3천만원 이하 (신혼·다자녀 1억 5천만원 이하)",
				"구입 주택 전용면적 85㎡ 이하(비수도권 100㎡), 분양·매입가 6억원 이하",
				"기금e든든 사전 자격진단 통과 및 최근 3개월 연체·체납 이력 없음",
			},
			OnlineSteps: []model.GuidanceStep{
				{
					Title:             "기금e든든 회원가입 및 자격진단",
					Description:       "공동/간편 인증으로 로그인 후 \"내 생애 최초\" 상품을 선택하고 세대 정보와 소득, 주택 정보를 입력해 자격을 확인합니다.",
					RequiredDocuments: []string{"resident-registration-card", "income-certificate"},
				},
				{
					Title:       "대출조건 입력과 한도 계산",
					Description: "구입 주택가격, 필요한 대출금, 상환방식(원리금균등 등)을 입력하면 예상 금리와 한도를 확인할 수 있습니다.",
				},
				{
					Title:             "전자서류 첨부 및 사전승인 신청",
					Description:       "무주택 확인서, 매매계약서, 통장 사본 등을 스캔하여 업로드하고 희망 취급은행을 지정해 심사를 요청합니다.",
					RequiredDocuments: []string{"home-ownership-proof", "sales-contract", "bank-account"},
				},
			},
			OfflineSteps: []model.GuidanceStep{
				{
					Title:             "취급은행 창구 방문",
					Description:       "우리/국민/농협/IBK 등 기금 취급은행에서 원본 서류를 제출하고 담보·보증 절차를 안내받습니다.",
					RequiredDocuments: []string{"resident-registration-card", "income-certificate", "home-ownership-proof", "sales-contract"},
				},
				{
					Title:       "대출 승인 및 실행",
					Description: "심사 승인 후 약정을 체결하고 잔금일에 맞춰 대출금이 실행됩니다.",
				},
			},
			Documents: documentsByID(
				"resident-registration-card",
				"family-relationship",
				"income-certificate",
				"home-ownership-proof",
				"sales-contract",
				"bank-account",
			),
			LastReviewed: "2025-01-10",
			Notes:        "최대 4억원, LTV 80% 이내, 10·20·30년 만기 선택. 기금 예산 소진 시 조기 마감될 수 있으므로 사전예약 제출 권장.",
		},
		{
			ID:      "gwangju-youth-rent",
			Title:   "광주광역시 청년 월세 지원",
			Summary: "광주광역시가 청년 1인 가구의 주거비 부담을 줄이기 위해 월 최대 15만원을 최장 12개월까지 현금 지원합니다.",
			EligibilityHighlights: []string{
				"신청일 기준 만 19~39세 광주광역시 거주자 (전입 1년 이상)",
				"보증금 1억 5천만원 이하 · 월세 70만원 이하 주택(전용 85㎡ 이하) 거주",
				"가구 소득이 기준중위소득 150% 이하이며 무주택자",
				"국가/지자체 청년 주거비 중복 지원을 받지 않은 자",
			},
			OnlineSteps: []model.GuidanceStep{
				{
					Title:             "청년정책 통합포털 로그인",
					Description:       "광주 청년정책 포털에서 회원가입 후 공동/간편 인증으로 로그인하여 월세 지원 공고를 확인합니다.",
					RequiredDocuments: []string{"resident-registration-card"},
				},
				{
					Title:             "전자신청서 작성 및 서류 업로드",
					Description:       "임대차 계약서, 소득증빙, 통장 사본을 업로드하고 지원 기간(최대 12개월)을 선택합니다.",
					RequiredDocuments: []string{"lease-contract", "income-certificate", "bank-account"},
				},
				{
					Title:       "심사 결과 확인 및 계좌 등록",
					Description: "심사 결과를 포털에서 확인하고 지원금을 받을 본인 명의 계좌를 등록합니다.",
				},
			},
			OfflineSteps: []model.GuidanceStep{
				{
					Title:             "거주지 구청 청년정책팀 방문 접수",
					Description:       "온라인 신청이 어려운 경우 거주지 구청 청년정책팀을 방문해 서면으로 접수합니다.",
					RequiredDocuments: []string{"lease-contract", "rent-transfer-proof"},
				},
				{
					Title:       "현장 확인 및 약정 체결",
					Description: "필요 시 거주 실태 확인 후 지원 약정을 체결합니다.",
				},
			},
			Documents: documentsByID(
				"resident-registration-card",
				"family-relationship",
				"income-certificate",
				"lease-contract",
				"rent-transfer-proof",
				"bank-account",
			),
			LastReviewed: "2025-01-10",
		},
	}
}

func documentsByID(ids ...string) []model.DocumentRequirement {
	docs := make([]model.DocumentRequirement, 0, len(ids))
	for _, id := range ids {
		for _, doc := range bundledDocuments {
			if doc.ID == id {
				docs = append(docs, doc)
				break
			}
		}
	}
	return docs
}

func bundledSequences() map[types.ServiceID][]model.SequenceRow {
	return map[types.ServiceID][]model.SequenceRow{
		"CP_001": {
			{
				ID:      "cp001-prep",
				Order:   1,
				Type:    "사전 준비",
				Title:   "인터넷 신청 전 서류 세트 확보",
				Content: "인터넷 신청 전에 필수 서류를 맞춰 두면 심사 지연을 줄일 수 있습니다.",
				Checklist: []string{
					"주택 매매계약서 전체(앞·뒷면) 스캔 또는 촬영본",
					"주민등록등본(상세) · 가족관계증명서",
					"소득 증빙: 근로소득원천징수영수증 · 건강보험 자격득실/납부확인",
					"사업자라면 사업자등록증 · 소득금액증명원",
					"재직증명서, 신분증, 본인 명의 통장 사본",
				},
				Note: "부모 소득·재산 서류는 요구하지 않으며, 보통 부부 합산만 확인합니다.",
				Links: []model.SequenceLink{
					{Label: "정부24", URL: "https://www.gov.kr/portal/main"},
					{Label: "홈택스", URL: "https://www.hometax.go.kr"},
				},
			},
			{
				ID:      "cp001-online",
				Order:   2,
				Type:    "온라인 신청",
				Title:   "기금e든든에서 신청서 접수",
				Content: "PC 또는 모바일 앱으로 '기금e든든' 접속 후 내집마련 디딤돌대출을 선택해 모든 절차를 온라인으로 진행합니다.",
				Checklist: []string{
					"로그인 후 내집마련 디딤돌대출 선택",
					"사전자격 조회로 조건 충족 여부 확인",
					"대출 신청서 작성 및 계약서·소득증명·등본 등 업로드",
					"접수번호 확인, 은행 방문 없이 보완 요청 대응",
				},
				Note: "보완 서류도 인터넷으로 다시 제출할 수 있으며, 아직 은행 방문은 필요 없습니다.",
				Links: []model.SequenceLink{
					{Label: "기금e든든", URL: "http://nhuf.molit.go.kr/"},
					{Label: "자격심사 페이지", URL: "http://nhuf.molit.go.kr/FP/FP08/FP0801/FP08010201.jsp"},
				},
			},
			{
				ID:      "cp001-review",
				Order:   3,
				Type:    "심사 진행",
				Title:   "지정 은행 배정 및 서류 심사",
				Content: "신청 완료 후 기금이 국민·농협·우리·신한·하나 등 취급은행을 배정하고 담당자가 심사를 시작합니다.",
				Checklist: []string{
					"제출 서류 검토 및 소득·재산·신용 조회",
					"부부 합산 여부와 LTV·DTI 규정 검토",
					"담보 주택 가격(KB 시세 등) 확인",
					"보완 요청 시 문자·앱 알림으로 안내 후 온라인 재제출",
				},
				Links: []model.SequenceLink{
					{Label: "사전자격 조회", URL: "http://nhuf.molit.go.kr/FP/FP08/FP0801/FP08010201.jsp"},
				},
			},
			{
				ID:      "cp001-visit",
				Order:   4,
				Type:    "은행 방문",
				Title:   "대출 실행 전 1회 방문",
				Content: "대출 실행 직전에 최소 1번 은행을 방문해 원본 서류 확인과 약정을 마칩니다.",
				Checklist: []string{
					"계약서·신분증 등 원본 제출 후 대출 약정서 서명",
					"근저당 설정 안내 및 관련 서류 처리",
					"잔금 날짜 확정 및 일정 공유",
				},
				Note: "방문 예약은 앱이나 전화로 가능하며, 최근에는 서류 검증과 약정을 한 번에 끝내는 경우가 많습니다.",
				Links: []model.SequenceLink{
					{Label: "KB은행", URL: "https://www.kbstar.com/"},
					{Label: "우리은행", URL: "https://spot.wooribank.com"},
				},
			},
			{
				ID:      "cp001-execute",
				Order:   5,
				Type:    "대출 실행",
				Title:   "승인 통보와 잔금 입금",
				Content: "심사 승인 알림을 받은 뒤 잔금일에 맞춰 대출을 실행합니다.",
				Checklist: []string{
					"문자·알림톡·기금e든든 앱으로 승인 내용 확인",
					"잔금일에 은행이 매도인 계좌로 주택 대금을 송금",
					"동시에 근저당 설정 진행",
				},
				Links: []model.SequenceLink{
					{Label: "기금e든든 앱", URL: "http://nhuf.molit.go.kr/"},
					{Label: "은행 업무 안내", URL: "https://www.kbstar.com/"},
				},
			},
			{
				ID:      "cp001-follow",
				Order:   6,
				Type:    "사후 관리",
				Title:   "실거주 의무 이행",
				Content: "디딤돌대출은 실거주 조건이 엄격하므로 실행 후 요건을 반드시 지켜야 합니다.",
				Checklist: []string{
					"대출 실행 후 1개월 이내 전입신고",
					"전입세대열람표 제출",
					"2년 이상 실거주 유지(빈집·임대 시 상환 요구 가능)",
				},
				Links: []model.SequenceLink{
					{Label: "정부24 전입신고", URL: "https://www.gov.kr/portal/main"},
				},
			},
		},
		"CP_002": {
			{
				ID:      "cp002-prep",
				Order:   1,
				Type:    "신청 준비",
				Title:   "신청서와 증빙 서류 묶음 준비",
				Content: "월세 지원 신청서를 작성하고 소득·재산 신고서, 서약서 등 필수 양식을 미리 확보합니다.",
				Checklist: []string{
					"임대차계약서 사본(확정일자 포함)",
					"최근 월세 이체 내역(최소 3개월)",
					"청년·부모의 가족관계증명서, 청약통장 사본 등 증빙",
				},
				Links: []model.SequenceLink{
					{Label: "등기소", URL: "https://www.iros.go.kr"},
					{Label: "인터넷뱅킹", URL: "https://obank.kbstar.com"},
					{Label: "정부24", URL: "https://www.gov.kr/portal/main"},
				},
			},
			{
				ID:      "cp002-apply",
				Order:   2,
				Type:    "신청 및 접수",
				Title:   "온라인 또는 행정복지센터 접수",
				Content: "복지로 등 온라인 포털 또는 관할 동·읍·면 행정복지센터를 방문해 신청서를 제출합니다.",
				Note:    "관할 지자체에서 상담 및 서류 확인을 진행합니다.",
				Links: []model.SequenceLink{
					{Label: "광주 청년포털", URL: "https://www.gwangju.go.kr"},
					{Label: "인터넷뱅킹", URL: "https://obank.kbstar.com"},
				},
			},
			{
				ID:      "cp002-review",
				Order:   3,
				Type:    "조사 및 심사",
				Title:   "공적자료 조회 및 추가 서류 제출",
				Content: "신청 후 공적자료(소득·재산) 조회가 이루어지며, 접수 후 약 45일 이내에 심사와 결정이 내려집니다.",
				Note:    "필요 시 추가 서류 제출을 요청받을 수 있으니 문자/전화 안내를 확인합니다.",
				Links: []model.SequenceLink{
					{Label: "정부24", URL: "https://www.gov.kr/portal/main"},
				},
			},
			{
				ID:      "cp002-grant",
				Order:   4,
				Type:    "선정 및 지급",
				Title:   "선정 통보 및 월세 지원금 지급",
				Content: "선정 결과를 통보받은 뒤 매월 지정일(예: 25일)에 지원금이 입금됩니다. 실제 납부한 월세 내에서 월 최대 20만원까지 지급됩니다.",
				Note:    "지급 기간 중 소득 상승, 주택 소유 등 조건이 변동되면 사후 관리나 환수 조치가 있을 수 있습니다.",
			},
		},
	}
}

func bundledPetitions() []*model.CivilPetition {
	return []*model.CivilPetition{
		{
			InfoID:  "CP_001",
			Name:    "내 생애 최초 주택 자금 대출",
			Summary: "생애 최초 주택 구입자를 위한 주택자금 대출 절차와 준비물 안내",
			Descriptions: []string{
				"생애 최초 주택 구입 여부와 소득 요건을 확인합니다.",
				"국민주택채권 매입 감면 대상인지 심사합니다.",
				"대출 실행 전 추가 서류 제출 여부를 확정합니다.",
			},
			OnlineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp001-online-1", Order: 1, Mode: types.StepModeOnline, Content: "주택도시기금 홈페이지에 접속해 회원가입을 완료합니다.", LinkURL: "http://nhuf.molit.go.kr/"}},
				{StepRecord: model.StepRecord{ID: "cp001-online-2", Order: 2, Mode: types.StepModeOnline, Content: "대출 자격심사 페이지에서 예비 자격심사를 진행하고 통과하면 대출 신청을 시작합니다.", LinkURL: "http://nhuf.molit.go.kr/FP/FP08/FP0801/FP08010201.jsp"}},
			},
			OfflineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp001-offline-1", Order: 3, Mode: types.StepModeOffline, Content: "은행에서 걸려오는 연락을 받고 신청 내용에 대해 상담합니다."}},
				{StepRecord: model.StepRecord{ID: "cp001-offline-2", Order: 4, Mode: types.StepModeOffline, Content: "매매하려는 주택에 대한 매매계약서를 작성하고 공인중개사가 준비해 주는 서류를 확인합니다."}},
				{StepRecord: model.StepRecord{ID: "cp001-offline-3", Order: 5, Mode: types.StepModeOffline, Content: "은행 방문 전에 행정복지센터에서 제출할 서류를 준비합니다.", LinkURL: "https://www.gov.kr/portal/main"}},
				{StepRecord: model.StepRecord{ID: "cp001-offline-4", Order: 6, Mode: types.StepModeOffline, Content: "회사에서 급여명세서 등 소득증명 자료를 함께 준비합니다."}},
				{StepRecord: model.StepRecord{ID: "cp001-offline-5", Order: 7, Mode: types.StepModeOffline, Content: "은행을 직접 방문해 대출 심사 관련 서류를 최종 제출하고 대출 진행을 확정합니다.", LinkURL: "https://www.kbstar.com/"}},
				{StepRecord: model.StepRecord{ID: "cp001-offline-6", Order: 8, Mode: types.StepModeOffline, Content: "1~2시간 이내에 대출 최종 승인 여부와 계좌 입금 여부를 확인합니다."}},
			},
		},
		{
			InfoID:  "CP_002",
			Name:    "광주 청년 월세 한시 특별지원",
			Summary: "광주광역시 거주 청년 대상 월세 지원 사업",
			Descriptions: []string{
				"지원 대상 연령 및 소득 기준을 충족하는지 확인합니다.",
				"임대차 계약서와 주민등록상 주소지를 대조합니다.",
				"월세 지급 계좌 정보와 지원 기간을 확정합니다.",
			},
			OnlineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp002-online-1", Order: 1, Mode: types.StepModeOnline, Content: "광주광역시 복지포털에서 \"월세 특별지원\"을 선택합니다.", LinkURL: "https://www.gwangju.go.kr"}},
				{StepRecord: model.StepRecord{ID: "cp002-online-2", Order: 2, Mode: types.StepModeOnline, Content: "공동인증서로 로그인 후 신청서를 작성합니다.", LinkURL: "https://www.gov.kr/portal/main"}},
				{StepRecord: model.StepRecord{ID: "cp002-online-3", Order: 3, Mode: types.StepModeOnline, Content: "임대차 계약서, 통장 사본, 소득자료를 PDF로 업로드합니다.", LinkURL: "https://obank.kbstar.com"}},
			},
			OfflineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp002-offline-1", Order: 4, Mode: types.StepModeOffline, Content: "관할 구청 청년정책과 방문", LinkURL: "https://www.iros.go.kr"}},
				{StepRecord: model.StepRecord{ID: "cp002-offline-2", Order: 5, Mode: types.StepModeOffline, Content: "원본 서류 검토 및 서명 후 접수증 수령"}},
			},
		},
		{
			InfoID:  "CP_003",
			Name:    "주민등록 등본 인터넷 발급",
			Summary: "민원24/정부24를 통한 주민등록 등본 온라인 발급 방법",
			Descriptions: []string{
				"정부24 계정을 생성하고 공동인증서를 등록합니다.",
				"수수료 결제 수단(카드, 휴대폰)을 준비합니다.",
			},
			OnlineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp003-online-1", Order: 1, Mode: types.StepModeOnline, Content: "정부24 접속 후 \"주민등록표 등본\" 민원을 검색합니다.", LinkURL: "https://www.gov.kr"}},
				{StepRecord: model.StepRecord{ID: "cp003-online-2", Order: 2, Mode: types.StepModeOnline, Content: "신청정보 입력 및 발급 목적을 선택합니다."}},
				{StepRecord: model.StepRecord{ID: "cp003-online-3", Order: 3, Mode: types.StepModeOnline, Content: "수수료 결제 후 PDF 또는 출력 형태로 등본을 발급합니다."}},
			},
			OfflineSteps: []model.Step{
				{StepRecord: model.StepRecord{ID: "cp003-offline-1", Order: 4, Mode: types.StepModeOffline, Content: "거주지 주민센터 방문"}},
				{StepRecord: model.StepRecord{ID: "cp003-offline-2", Order: 5, Mode: types.StepModeOffline, Content: "무인민원발급기 또는 민원 창구에서 신분증 제시 후 발급"}},
			},
		},
	}
}

func bundledFilters() map[types.ServiceID]*usecase.NearbyFilter {
	return map[types.ServiceID]*usecase.NearbyFilter{
		"first-home-loan": {
			Categories: []types.OfficeCategory{types.OfficeCategoryCivil, types.OfficeCategoryWelfare},
			Keywords:   []string{"은행", "금융", "행정복지", "주택도시기금"},
		},
		"CP_001": {
			Categories: []types.OfficeCategory{types.OfficeCategoryCivil, types.OfficeCategoryWelfare},
			Keywords:   []string{"은행", "금융", "행정복지", "주택도시기금", "동구청", "북구청", "서구청", "남구청", "광산구청", "구청"},
		},
	}
}

func defaultNearbyFilter() *usecase.NearbyFilter {
	return &usecase.NearbyFilter{
		Categories: []types.OfficeCategory{
			types.OfficeCategoryCivil,
			types.OfficeCategoryWelfare,
			types.OfficeCategoryEmployment,
		},
		Keywords: []string{"행정복지", "구청"},
	}
}
