package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
)

func TestClientRequiresBaseURL(t *testing.T) {
	_, err := backend.New("")
	gt.Error(t, err)
}

func TestClientGetPetition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/api/civil-petitions/CP_001")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"infoId": "CP_001",
			"cpName": "주택 자금 대출",
			"simple": "요약",
			"onlineSteps": ["접수", {"id": 1, "order": 2, "mode": "ONLINE", "content": "서류 업로드"}]
		}`))
	}))
	defer server.Close()

	client := gt.R1(backend.New(server.URL)).NoError(t)
	petition, err := client.GetPetition(context.Background(), "CP_001")
	gt.NoError(t, err).Required()
	gt.Value(t, petition.Name).Equal("주택 자금 대출")
	gt.Array(t, petition.OnlineSteps).Length(2).Required()
	gt.Value(t, petition.OnlineSteps[1].ID).Equal("1")
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such petition"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := gt.R1(backend.New(server.URL)).NoError(t)
	_, err := client.GetPetition(context.Background(), "CP_404")
	gt.Bool(t, errors.Is(err, backend.ErrNotFound)).True()
}

func TestClientErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := gt.R1(backend.New(server.URL)).NoError(t)
	_, err := client.ListOffices(context.Background())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("backend returned error status")
}

func TestClientUpsertCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.URL.Path).Equal("/api/cases")
		gt.Value(t, r.URL.Query().Get("memberId")).Equal("2")

		var body map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body)).Required()
		gt.Value(t, body["cpInfoId"]).Equal("CP_001")
		gt.Value(t, body["status"]).Equal("in-progress")
		gt.Value(t, body["checklist"]).Equal(`["doc-a"]`)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"caseId": "case-1",
			"memberId": "2",
			"cpInfoId": "CP_001",
			"status": "in-progress",
			"checklist": "[\"doc-a\"]",
			"startedAt": "2025-03-01T09:00:00Z"
		}`))
	}))
	defer server.Close()

	client := gt.R1(backend.New(server.URL)).NoError(t)
	record, err := client.UpsertCase(context.Background(), "2", interfaces.CaseUpsert{
		ServiceID: "CP_001",
		Status:    types.CaseStatusInProgress,
		Checklist: []string{"doc-a"},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, record.CaseID).Equal("case-1")
}

func TestClientListCases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/api/cases")
		gt.Value(t, r.URL.Query().Get("memberId")).Equal("2")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"caseId":"case-1","memberId":"2","cpInfoId":"CP_001"}]`))
	}))
	defer server.Close()

	client := gt.R1(backend.New(server.URL)).NoError(t)
	records, err := client.ListCases(context.Background(), "2")
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1).Required()
	gt.Value(t, records[0].CPInfoID).Equal("CP_001")
}
