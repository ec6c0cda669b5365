// Package lie: structural self-tests. Each checker runs one algebraic law
// against a bounded sample of elements — not exhaustive, not random beyond
// the fixed sampling budget — and demands exact equality: zero tolerance,
// no floating-point slack.

package lie

import "fmt"

// DefaultMaxRuns bounds how many tuples a law checker examines.
const DefaultMaxRuns = 64

// LawOption configures the law checkers.
type LawOption func(*lawConfig)

type lawConfig struct {
	elements []Element
	maxRuns  int
}

// WithElements overrides the sampled elements (default: L.SomeElements()).
func WithElements(elems ...Element) LawOption {
	return func(c *lawConfig) { c.elements = elems }
}

// WithMaxRuns overrides the sampling budget (default: DefaultMaxRuns).
// Non-positive values are a programmer error and panic.
func WithMaxRuns(n int) LawOption {
	if n <= 0 {
		panic("lie: WithMaxRuns requires n >= 1")
	}
	return func(c *lawConfig) { c.maxRuns = n }
}

func gatherLawOptions(L Algebra, opts []LawOption) lawConfig {
	cfg := lawConfig{maxRuns: DefaultMaxRuns}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.elements == nil {
		cfg.elements = L.SomeElements()
	}
	return cfg
}

// CheckAntisymmetry verifies [x, x] = 0 for every sampled x.
func CheckAntisymmetry(L Algebra, opts ...LawOption) error {
	cfg := gatherLawOptions(L, opts)
	runs := 0
	for _, x := range cfg.elements {
		if runs >= cfg.maxRuns {
			break
		}
		runs++
		b, err := x.Bracket(x)
		if err != nil {
			return err
		}
		if !b.IsZero() {
			return fmt.Errorf("%w: [x,x] = %s for x = %s", ErrAntisymmetryViolated, b, x)
		}
	}
	return nil
}

// CheckJacobiIdentity verifies
//
//	[x,[y,z]] + [y,[z,x]] + [z,[x,y]] = 0
//
// for sampled triples with x != y, within the sampling budget.
func CheckJacobiIdentity(L Algebra, opts ...LawOption) error {
	cfg := gatherLawOptions(L, opts)
	zero := L.Zero()
	runs := 0
	for _, x := range cfg.elements {
		for _, y := range cfg.elements {
			if x.Equal(y) {
				continue
			}
			for _, z := range cfg.elements {
				if runs >= cfg.maxRuns {
					return nil
				}
				runs++
				sum, err := jacobiSum(x, y, z)
				if err != nil {
					return err
				}
				if !sum.Equal(zero) {
					return fmt.Errorf("%w: x=%s y=%s z=%s gives %s",
						ErrJacobiViolated, x, y, z, sum)
				}
			}
		}
	}
	return nil
}

// CheckDistributivity verifies both distributive laws of the bracket over
// addition, [x, y+z] = [x,y] + [x,z] and [x+y, z] = [x,z] + [y,z], for
// sampled triples within the budget.
func CheckDistributivity(L Algebra, opts ...LawOption) error {
	cfg := gatherLawOptions(L, opts)
	runs := 0
	for _, x := range cfg.elements {
		for _, y := range cfg.elements {
			for _, z := range cfg.elements {
				if runs >= cfg.maxRuns {
					return nil
				}
				runs++
				if err := distributes(x, y, z); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CheckLaws runs all three structural checkers in a fixed order and reports
// the first violation.
func CheckLaws(L Algebra, opts ...LawOption) error {
	if err := CheckAntisymmetry(L, opts...); err != nil {
		return err
	}
	if err := CheckJacobiIdentity(L, opts...); err != nil {
		return err
	}
	return CheckDistributivity(L, opts...)
}

// jacobiSum computes [x,[y,z]] + [y,[z,x]] + [z,[x,y]].
func jacobiSum(x, y, z Element) (Element, error) {
	yz, err := y.Bracket(z)
	if err != nil {
		return nil, err
	}
	zx, err := z.Bracket(x)
	if err != nil {
		return nil, err
	}
	xy, err := x.Bracket(y)
	if err != nil {
		return nil, err
	}
	a, err := x.Bracket(yz)
	if err != nil {
		return nil, err
	}
	b, err := y.Bracket(zx)
	if err != nil {
		return nil, err
	}
	c, err := z.Bracket(xy)
	if err != nil {
		return nil, err
	}
	ab, err := a.Add(b)
	if err != nil {
		return nil, err
	}
	return ab.Add(c)
}

// distributes checks both distributive laws on one triple.
func distributes(x, y, z Element) error {
	yz, err := y.Add(z)
	if err != nil {
		return err
	}
	lhs, err := x.Bracket(yz)
	if err != nil {
		return err
	}
	xy, err := x.Bracket(y)
	if err != nil {
		return err
	}
	xz, err := x.Bracket(z)
	if err != nil {
		return err
	}
	rhs, err := xy.Add(xz)
	if err != nil {
		return err
	}
	if !lhs.Equal(rhs) {
		return fmt.Errorf("%w: [x,y+z] != [x,y]+[x,z] for x=%s y=%s z=%s",
			ErrDistributivityViolated, x, y, z)
	}
	xPlusY, err := x.Add(y)
	if err != nil {
		return err
	}
	lhs, err = xPlusY.Bracket(z)
	if err != nil {
		return err
	}
	yzBr, err := y.Bracket(z)
	if err != nil {
		return err
	}
	rhs, err = xz.Add(yzBr)
	if err != nil {
		return err
	}
	if !lhs.Equal(rhs) {
		return fmt.Errorf("%w: [x+y,z] != [x,z]+[y,z] for x=%s y=%s z=%s",
			ErrDistributivityViolated, x, y, z)
	}
	return nil
}
