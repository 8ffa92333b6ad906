package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bangasho83/hummane/internal/platform/db"
	"github.com/bangasho83/hummane/internal/requestctx"
)

// Event is one append-only audit log row. Payload carries the entity
// snapshot after the change.
type Event struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"companyId"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Filter struct {
	Action     string
	EntityType string
	ActorID    string
}

type Service struct {
	DB db.Querier
}

func New(q db.Querier) *Service {
	return &Service{DB: q}
}

// Record appends an audit event. The request id is read from ctx so call
// sites only pass what the middleware cannot know.
func (s *Service) Record(ctx context.Context, companyID, actorID, action, entityType, entityID, ip string, payload any) error {
	var payloadJSON []byte
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		payloadJSON = data
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_log (company_id, actor_id, action, entity_type, entity_id, payload, request_id, ip)
    VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8)
  `, companyID, actorID, action, entityType, entityID, payloadJSON, requestctx.GetRequestID(ctx), ip)
	return err
}

func (s *Service) Count(ctx context.Context, companyID string, filter Filter) (int, error) {
	query, args := buildBaseQuery("SELECT COUNT(1)", companyID, filter)
	var total int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Service) List(ctx context.Context, companyID string, filter Filter, limit, offset int) ([]Event, error) {
	query, args := buildBaseQuery(`
    SELECT id, company_id::text, COALESCE(actor_id::text, ''), action, entity_type,
           COALESCE(entity_id, ''), COALESCE(request_id, ''), COALESCE(ip, ''),
           payload, created_at`, companyID, filter)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Event, 0)
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.CompanyID, &evt.ActorID, &evt.Action, &evt.EntityType,
			&evt.EntityID, &evt.RequestID, &evt.IP, &evt.Payload, &evt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	return out, rows.Err()
}

func buildBaseQuery(selectClause, companyID string, filter Filter) (string, []any) {
	query := selectClause + " FROM audit_log WHERE company_id = $1"
	args := []any{companyID}

	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if filter.EntityType != "" {
		args = append(args, filter.EntityType)
		query += fmt.Sprintf(" AND entity_type = $%d", len(args))
	}
	if filter.ActorID != "" {
		args = append(args, filter.ActorID)
		query += fmt.Sprintf(" AND actor_id = $%d::uuid", len(args))
	}
	return query, args
}
