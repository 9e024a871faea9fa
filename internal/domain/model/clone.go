package model

import (
	"maps"
	"slices"
)

// Clone returns a copy of c that shares no memory with it.
func (c Client) Clone() Client {
	c.OnboardingCompletedAt = clonePtr(c.OnboardingCompletedAt)
	c.LastContactAt = clonePtr(c.LastContactAt)
	c.OnboardingProgress = clonePtr(c.OnboardingProgress)
	if c.LatestPulseResponse != nil {
		r := c.LatestPulseResponse.Clone()
		c.LatestPulseResponse = &r
	}
	return c
}

// Clone returns a copy of r that shares no memory with it.
func (r PulseResponse) Clone() PulseResponse {
	r.ReferenceAccounts = slices.Clone(r.ReferenceAccounts)
	r.RawPayload = clonePayload(r.RawPayload)
	return r
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	t.DueDate = clonePtr(t.DueDate)
	t.CompletedAt = clonePtr(t.CompletedAt)
	return t
}

// Clone returns a copy of n that shares no memory with it.
func (n SnsNewsItem) Clone() SnsNewsItem {
	n.PlatformTags = slices.Clone(n.PlatformTags)
	n.IndustryTags = slices.Clone(n.IndustryTags)
	return n
}

// Clone returns a copy of l that shares no memory with it.
func (l Lead) Clone() Lead {
	l.Score = clonePtr(l.Score)
	l.ExpectedMRR = clonePtr(l.ExpectedMRR)
	l.LastContactAt = clonePtr(l.LastContactAt)
	return l
}

// Clone returns c. Contact logs hold no references.
func (c ContactLog) Clone() ContactLog { return c }

// Clone returns a copy of p that shares no memory with it.
func (p Proposal) Clone() Proposal {
	p.Amount = clonePtr(p.Amount)
	p.SentAt = clonePtr(p.SentAt)
	p.FollowDueAt = clonePtr(p.FollowDueAt)
	return p
}

// Clone returns a copy of c that shares no memory with it.
func (c Contract) Clone() Contract {
	c.MonthlyFee = clonePtr(c.MonthlyFee)
	c.StartDate = clonePtr(c.StartDate)
	c.EndDate = clonePtr(c.EndDate)
	return c
}

// Clone returns a copy of n that shares no memory with it.
func (n Notification) Clone() Notification {
	n.ReadAt = clonePtr(n.ReadAt)
	return n
}

// Clone returns a separate pointer to the same instant, or nil.
func (t *Time) Clone() *Time { return clonePtr(t) }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// clonePayload copies the nested maps and slices a decoded JSON object can hold.
func clonePayload(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return clonePayload(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
