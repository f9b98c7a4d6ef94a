package circuit

import "errors"

// Sentinel errors for circuit processing.
var (
	// ErrNoDataQubits indicates no data qubit components were placed.
	ErrNoDataQubits = errors.New("circuit: no data qubits placed")

	// ErrNoChecks indicates neither parity checks nor ancillas were
	// placed.
	ErrNoChecks = errors.New("circuit: no parity checks or ancillas placed")

	// ErrEmptySyndrome indicates a correction was requested without a
	// syndrome.
	ErrEmptySyndrome = errors.New("circuit: empty syndrome")
)

// Type identifies a placeable component. The string values are the
// serialization format of saved layouts.
type Type string

// Placeable component types.
const (
	TypeDataQubit    Type = "data-qubit"
	TypeAncillaQubit Type = "ancilla"
	TypeParityCheck  Type = "parity-check"
	TypeXGate        Type = "x-gate"
	TypeZGate        Type = "z-gate"
	TypeYGate        Type = "y-gate"
	TypeHGate        Type = "h-gate"
	TypeCNOTGate     Type = "cnot-gate"
	TypeMeasure      Type = "measure"
	TypeReset        Type = "reset"
)

// IsQubit reports whether the type carries quantum state.
func (t Type) IsQubit() bool {
	return t == TypeDataQubit || t == TypeAncillaQubit
}

// IsGate reports whether the type is a gate operation.
func (t Type) IsGate() bool {
	switch t {
	case TypeXGate, TypeZGate, TypeYGate, TypeHGate, TypeCNOTGate:
		return true
	}
	return false
}

// ViewMode selects how a front end renders the layout. Carried in saved
// layouts so sessions reopen the way they were left.
type ViewMode string

// Available view modes.
const (
	ViewIsometric    ViewMode = "isometric"
	ViewSurface2D    ViewMode = "surface-2d"
	ViewLDPCTanner   ViewMode = "ldpc-tanner"
	ViewLDPCPhysical ViewMode = "ldpc-physical"
)

// Position is an (x, y, z) grid coordinate. X orders components in
// time, Y is the wire lane.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Lane returns the wire lane.
func (p Position) Lane() int { return p.Y }

// Manhattan returns the |dx|+|dy| grid distance to q, ignoring Z.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Component is one placed element of a circuit layout.
type Component struct {
	Type     Type     `json:"type"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation,omitempty"`

	// ControlLane and TargetLane bind two-qubit gates to wires; nil
	// means the gate falls back to its own lane and the next one.
	ControlLane *int `json:"control_lane,omitempty"`
	TargetLane  *int `json:"target_lane,omitempty"`
}

// Layout is a complete saved circuit.
type Layout struct {
	View       ViewMode    `json:"view"`
	Components []Component `json:"components"`
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
