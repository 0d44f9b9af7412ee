package mip

import (
	"context"
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	integralityTol = 1e-5
	improvementTol = 1e-9
)

type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

type node struct {
	fixed map[Var]float64
}

// Solve ищет оптимум методом ветвей и границ в пределах лимита времени.
// При исчерпании лимита возвращается лучший найденный инкумбент со статусом TIME_LIMIT.
func (m *Model) Solve(ctx context.Context, timeLimit time.Duration) Solution {
	deadline := time.Time{}
	if timeLimit > 0 {
		deadline = time.Now().Add(timeLimit)
	}
	if ctxDeadline, ok := ctx.Deadline(); ok && (deadline.IsZero() || ctxDeadline.Before(deadline)) {
		deadline = ctxDeadline
	}

	rootObj, rootX, err := m.solveRelaxation(nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return Solution{Status: StatusInfeasible}
	case errors.Is(err, lp.ErrUnbounded):
		return Solution{Status: StatusUnbounded}
	case err != nil:
		return Solution{Status: StatusNoSolution}
	}

	if branchVar := m.fractionalBinary(rootX); branchVar < 0 {
		return Solution{Status: StatusOptimal, Objective: rootObj, Values: rootX}
	}

	var (
		incumbent []float64
		bestObj   = math.Inf(1)
		timedOut  bool
		stack     = []node{{fixed: map[Var]float64{}}}
	)

	for len(stack) > 0 {
		if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
			timedOut = true
			break
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj, x, err := m.solveRelaxation(current.fixed)
		if err != nil {
			continue
		}
		if obj >= bestObj-improvementTol {
			continue
		}

		branchVar := m.fractionalBinary(x)
		if branchVar < 0 {
			bestObj = obj
			incumbent = x
			continue
		}

		near := math.Round(x[branchVar])
		far := 1 - near

		stack = append(stack, branch(current, branchVar, far))
		stack = append(stack, branch(current, branchVar, near))
	}

	switch {
	case incumbent != nil && timedOut:
		return Solution{Status: StatusTimeLimit, Objective: bestObj, Values: incumbent}
	case incumbent != nil:
		return Solution{Status: StatusOptimal, Objective: bestObj, Values: incumbent}
	case timedOut:
		return Solution{Status: StatusNoSolution}
	default:
		return Solution{Status: StatusInfeasible}
	}
}

func branch(parent node, v Var, value float64) node {
	fixed := make(map[Var]float64, len(parent.fixed)+1)
	for key, val := range parent.fixed {
		fixed[key] = val
	}
	fixed[v] = value

	return node{fixed: fixed}
}

// fractionalBinary возвращает бинарную переменную, наиболее далекую от целого,
// либо -1, если решение целочисленно.
func (m *Model) fractionalBinary(x []float64) Var {
	best := Var(-1)
	bestDist := integralityTol

	for i, kind := range m.kinds {
		if kind != Binary {
			continue
		}

		dist := math.Abs(x[i] - math.Round(x[i]))
		if dist > bestDist {
			bestDist = dist
			best = Var(i)
		}
	}

	return best
}

// solveRelaxation решает LP-релаксацию с зафиксированными бинарными переменными.
// Задача приводится к стандартной форме gonum: min c^T x, Ax = b, x >= 0.
func (m *Model) solveRelaxation(fixed map[Var]float64) (float64, []float64, error) {
	n := len(m.kinds)

	slackCount := 0
	for _, cons := range m.constraints {
		if cons.sense != Equal {
			slackCount++
		}
	}

	upperRows := 0
	for i := range m.kinds {
		if isFinite(m.upperOf(i)) {
			upperRows++
		}
	}

	rows := len(m.constraints) + upperRows + len(fixed)
	cols := n + slackCount + upperRows

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	copy(c, m.objective)

	row := 0
	slackCol := n
	for _, cons := range m.constraints {
		for _, term := range cons.terms {
			a.Set(row, int(term.Var), a.At(row, int(term.Var))+term.Coef)
		}
		b[row] = cons.rhs

		switch cons.sense {
		case LessEq:
			a.Set(row, slackCol, 1)
			slackCol++
		case GreaterEq:
			a.Set(row, slackCol, -1)
			slackCol++
		}
		row++
	}

	for i := range m.kinds {
		upper := m.upperOf(i)
		if !isFinite(upper) {
			continue
		}

		a.Set(row, i, 1)
		a.Set(row, slackCol, 1)
		b[row] = upper
		slackCol++
		row++
	}

	for v, value := range fixed {
		a.Set(row, int(v), 1)
		b[row] = value
		row++
	}

	obj, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return 0, nil, err
	}

	return obj, x[:n], nil
}
