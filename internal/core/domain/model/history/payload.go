package history

import (
	"encoding/json"
	"fmt"
	"time"

	"gridstore/internal/pkg/errs"
)

// Payload is the structured before/after snapshot carried by a history
// record. Each action kind stores a specific payload shape, so readers get
// compile-time coverage of what every action records; the persisted form
// is a JSON encoding of that shape.
type Payload interface {
	isPayload()
}

// ProductSnapshot captures one product as it was when the record was written.
type ProductSnapshot struct {
	Code     string `json:"code"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Sequence int    `json:"sequence"`
}

func (ProductSnapshot) isPayload() {}

// StatusSnapshot captures the cell state on either side of a status
// transition. The count travels with the status so a manual override that
// disagrees with the actual product count stays auditable.
type StatusSnapshot struct {
	Status   string     `json:"status"`
	Count    int        `json:"count"`
	FilledAt *time.Time `json:"filled_at,omitempty"`
}

func (StatusSnapshot) isPayload() {}

// NoteSnapshot captures the cell note on either side of an update.
type NoteSnapshot struct {
	Note string `json:"note"`
}

func (NoteSnapshot) isPayload() {}

// ClearSnapshot captures the full cell state destroyed by a clear,
// including every product that was in the cell.
type ClearSnapshot struct {
	Status       string            `json:"status"`
	OrderCode    string            `json:"order_code"`
	OrderDate    string            `json:"order_date"`
	CurrentCount int               `json:"current_count"`
	TargetCount  int               `json:"target_count"`
	Note         string            `json:"note,omitempty"`
	Products     []ProductSnapshot `json:"products"`
}

func (ClearSnapshot) isPayload() {}

// EncodePayload serializes a payload for persistence. A nil payload
// encodes to nil.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// DecodePayload deserializes a persisted payload back into the shape the
// action stores on the given side. Empty data yields a nil payload.
func DecodePayload(action Action, side Side, data []byte) (Payload, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decode := func(target Payload) (Payload, error) {
		if err := json.Unmarshal(data, target); err != nil {
			return nil, err
		}
		return target, nil
	}

	switch action {
	case ActionProductAdded:
		if side == SideOld {
			return nil, fmt.Errorf("%w: product_added records have no old payload",
				errs.ErrValueIsInvalid)
		}
		p, err := decode(&ProductSnapshot{})
		if err != nil {
			return nil, err
		}
		return *p.(*ProductSnapshot), nil
	case ActionStatusChanged:
		p, err := decode(&StatusSnapshot{})
		if err != nil {
			return nil, err
		}
		return *p.(*StatusSnapshot), nil
	case ActionNoteUpdated:
		p, err := decode(&NoteSnapshot{})
		if err != nil {
			return nil, err
		}
		return *p.(*NoteSnapshot), nil
	case ActionCellCleared:
		if side == SideNew {
			return nil, fmt.Errorf("%w: cell_cleared records have no new payload",
				errs.ErrValueIsInvalid)
		}
		p, err := decode(&ClearSnapshot{})
		if err != nil {
			return nil, err
		}
		return *p.(*ClearSnapshot), nil
	default:
		return nil, action.Validate()
	}
}

// Side distinguishes the before and after payloads of a record.
type Side int

const (
	// SideOld is the payload describing the state before the action.
	SideOld Side = iota

	// SideNew is the payload describing the state after the action.
	SideNew
)
