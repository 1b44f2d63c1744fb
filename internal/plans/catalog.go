// Package plans holds the static subscription catalog.
package plans

import (
	"sort"
	"strings"

	"github.com/GlebRadaev/wordpay/internal/domain"
)

const DefaultPlanID = "basic"

var defaultPlans = []domain.Plan{
	{ID: "basic", Price: 20, Words: 100, Description: "Basic Subscription - 20 for 100 words"},
	{ID: "premium", Price: 50, Words: 1000, Description: "Premium Subscription - 50 for 1000 words"},
}

type Catalog struct {
	plans    map[string]domain.Plan
	fallback domain.Plan
}

// New builds a catalog from plans. The plan named fallbackID answers every
// unknown lookup and must be present.
func New(plans []domain.Plan, fallbackID string) *Catalog {
	c := &Catalog{plans: make(map[string]domain.Plan, len(plans))}
	for _, p := range plans {
		p.ID = strings.ToLower(p.ID)
		c.plans[p.ID] = p
	}
	fb, ok := c.plans[strings.ToLower(fallbackID)]
	if !ok {
		panic("plans: fallback plan " + fallbackID + " is not in the catalog")
	}
	c.fallback = fb
	return c
}

func Default() *Catalog {
	return New(defaultPlans, DefaultPlanID)
}

// Lookup never fails: unknown ids resolve to the fallback plan.
func (c *Catalog) Lookup(planID string) domain.Plan {
	if p, ok := c.plans[strings.ToLower(strings.TrimSpace(planID))]; ok {
		return p
	}
	return c.fallback
}

func (c *Catalog) List() []domain.Plan {
	out := make([]domain.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
