package usecase

import (
	"fmt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// SequenceSource provides curated sequence rows for a service. An unknown
// service yields an empty slice.
type SequenceSource interface {
	SequenceRows(id types.ServiceID) []model.SequenceRow
}

// NormalizeStep returns the canonical record for a step. A nil step yields
// an empty record with empty content; a step decoded from a plain string
// carries only its content. Total over its input domain.
func NormalizeStep(step *model.Step) model.StepRecord {
	if step == nil {
		return model.StepRecord{}
	}
	return step.StepRecord
}

// SequenceResolver produces the ordered procedural walkthrough for a
// service. A curated sequence table takes precedence; otherwise rows are
// synthesized from the petition's raw online and offline steps.
type SequenceResolver struct {
	curated SequenceSource
}

// NewSequenceResolver creates a resolver. curated may be nil, in which case
// every sequence is synthesized from petition steps.
func NewSequenceResolver(curated SequenceSource) *SequenceResolver {
	return &SequenceResolver{curated: curated}
}

// Resolve returns the sequence rows for the service. The result is
// deterministic for a given (serviceID, petition) pair, and empty when
// neither a curated table nor petition steps exist; the caller renders the
// explicit "no steps" state.
func (r *SequenceResolver) Resolve(serviceID types.ServiceID, petition *model.CivilPetition) []model.SequenceRow {
	if r.curated != nil {
		if rows := r.curated.SequenceRows(serviceID); len(rows) > 0 {
			return mergePetitionLinks(rows, petition)
		}
	}
	if petition == nil {
		return []model.SequenceRow{}
	}
	return buildFromPetition(petition)
}

// rowsFromSteps normalizes raw steps into sequence rows. Rows without an
// explicit order get offset+index+1 so a later (offline) chunk sorts after
// an earlier (online) one even when per-step orders are missing.
func rowsFromSteps(steps []model.Step, fallbackType string, offset int) []model.SequenceRow {
	rows := make([]model.SequenceRow, 0, len(steps))
	for i := range steps {
		rec := NormalizeStep(&steps[i])
		row := model.SequenceRow{
			ID:      rec.ID,
			Order:   rec.Order,
			Type:    rec.Mode.Label(fallbackType),
			Content: rec.Content,
			LinkURL: rec.LinkURL,
		}
		if row.ID == "" {
			row.ID = fmt.Sprintf("%s-%d", fallbackType, i)
		}
		if row.Order == 0 {
			row.Order = offset + i + 1
		}
		rows = append(rows, row)
	}
	return rows
}

func buildFromPetition(petition *model.CivilPetition) []model.SequenceRow {
	online := rowsFromSteps(petition.OnlineSteps, types.LabelOnline, 0)

	lastOnlineOrder := 0
	for _, row := range online {
		if row.Order > lastOnlineOrder {
			lastOnlineOrder = row.Order
		}
	}

	offline := rowsFromSteps(petition.OfflineSteps, types.LabelOffline, lastOnlineOrder)

	rows := make([]model.SequenceRow, 0, len(online)+len(offline))
	rows = append(rows, online...)
	rows = append(rows, offline...)
	for i := range rows {
		if rows[i].Order == 0 {
			rows[i].Order = i + 1
		}
	}
	return rows
}

// mergePetitionLinks back-fills missing link URLs on curated rows from the
// petition's raw steps, matched by resolved order. Only the first link seen
// per order key is kept. Rows are copied; the curated source is never
// mutated. Rows still missing an order get index+1.
func mergePetitionLinks(rows []model.SequenceRow, petition *model.CivilPetition) []model.SequenceRow {
	links := make(map[int]string)
	if petition != nil {
		steps := make([]model.Step, 0, len(petition.OnlineSteps)+len(petition.OfflineSteps))
		steps = append(steps, petition.OnlineSteps...)
		steps = append(steps, petition.OfflineSteps...)
		for i := range steps {
			rec := NormalizeStep(&steps[i])
			if rec.LinkURL == "" {
				continue
			}
			key := rec.Order
			if key == 0 {
				key = i + 1
			}
			if _, ok := links[key]; !ok {
				links[key] = rec.LinkURL
			}
		}
	}

	merged := make([]model.SequenceRow, len(rows))
	for i, row := range rows {
		if row.Order == 0 {
			row.Order = i + 1
		}
		if row.LinkURL == "" {
			row.LinkURL = links[row.Order]
		}
		merged[i] = row
	}
	return merged
}
