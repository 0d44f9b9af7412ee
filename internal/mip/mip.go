// Package mip содержит небольшой решатель смешанно-целочисленных программ:
// ветви и границы по бинарным переменным, LP-релаксации считает симплекс из gonum.
package mip

import "math"

type Var int

type VarKind int

const (
	Continuous VarKind = iota
	Binary
)

type Sense int

const (
	LessEq Sense = iota
	GreaterEq
	Equal
)

type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusTimeLimit
	StatusUnbounded
	StatusNoSolution
)

// String возвращает терминальный статус в виде кода решателя.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusNoSolution:
		return "NO_SOLUTION"
	default:
		return "UNKNOWN"
	}
}

type Term struct {
	Var  Var
	Coef float64
}

type constraint struct {
	terms []Term
	sense Sense
	rhs   float64
}

// Model — минимизационная задача: все переменные неотрицательны,
// бинарные дополнительно ограничены единицей сверху.
type Model struct {
	kinds       []VarKind
	uppers      []float64
	objective   []float64
	constraints []constraint
}

// NewModel создает пустую модель.
func NewModel() *Model {
	return &Model{}
}

// AddBinary добавляет бинарную переменную.
func (m *Model) AddBinary() Var {
	m.kinds = append(m.kinds, Binary)
	m.uppers = append(m.uppers, 1)
	m.objective = append(m.objective, 0)

	return Var(len(m.kinds) - 1)
}

// AddContinuous добавляет непрерывную переменную с нижней границей 0.
// Верхняя граница может быть +Inf.
func (m *Model) AddContinuous(upper float64) Var {
	m.kinds = append(m.kinds, Continuous)
	m.uppers = append(m.uppers, upper)
	m.objective = append(m.objective, 0)

	return Var(len(m.kinds) - 1)
}

// AddConstraint добавляет линейное ограничение sum(terms) sense rhs.
func (m *Model) AddConstraint(terms []Term, sense Sense, rhs float64) {
	owned := make([]Term, len(terms))
	copy(owned, terms)

	m.constraints = append(m.constraints, constraint{terms: owned, sense: sense, rhs: rhs})
}

// SetObjectiveCoef задает коэффициент переменной в минимизируемой цели.
func (m *Model) SetObjectiveCoef(v Var, coef float64) {
	m.objective[v] = coef
}

// NumVars возвращает число переменных модели.
func (m *Model) NumVars() int {
	return len(m.kinds)
}

func (m *Model) upperOf(v int) float64 {
	if m.kinds[v] == Binary {
		return 1
	}

	return m.uppers[v]
}

func isFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
