package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRegisterView_RepeatedWithinWindowCountsOnce(t *testing.T) {
	for _, n := range []int{1, 2, 5, 50} {
		p := &Post{}
		for i := 0; i < n; i++ {
			p.RegisterView("1.2.3.4", "UA1", t0.Add(time.Duration(i)*time.Minute))
		}
		assert.Equal(t, int64(1), p.Views, "n=%d", n)
		assert.Len(t, p.ViewLogs, 1, "n=%d", n)
	}
}

func TestRegisterView_Scenario(t *testing.T) {
	p := &Post{Views: 10}

	entry, counted := p.RegisterView("1.2.3.4", "UA1", t0)
	require.True(t, counted)
	assert.Equal(t, int64(11), p.Views)
	require.Len(t, p.ViewLogs, 1)
	assert.Equal(t, ViewLog{IP: "1.2.3.4", UserAgent: "UA1", Timestamp: t0}, entry)

	_, counted = p.RegisterView("1.2.3.4", "UA1", t0.Add(time.Hour))
	assert.False(t, counted)
	assert.Equal(t, int64(11), p.Views)
	assert.Len(t, p.ViewLogs, 1)

	_, counted = p.RegisterView("1.2.3.4", "UA1", t0.Add(25*time.Hour))
	assert.True(t, counted)
	assert.Equal(t, int64(12), p.Views)
	assert.Len(t, p.ViewLogs, 2)
}

func TestRegisterView_DifferentAgentIsDistinctObserver(t *testing.T) {
	p := &Post{}
	p.RegisterView("1.2.3.4", "UA1", t0)
	_, counted := p.RegisterView("1.2.3.4", "UA2", t0.Add(time.Second))
	assert.True(t, counted)
	_, counted = p.RegisterView("5.6.7.8", "UA1", t0.Add(2*time.Second))
	assert.True(t, counted)
	assert.Equal(t, int64(3), p.Views)
}

func TestHasRecentView_Boundary(t *testing.T) {
	p := &Post{ViewLogs: []ViewLog{{IP: "1.2.3.4", UserAgent: "UA1", Timestamp: t0}}}

	// 记录恰好位于 cutoff 上：不算重复
	assert.False(t, p.HasRecentView("1.2.3.4", "UA1", t0.Add(ViewDedupWindow)))
	// 晚于 cutoff 一毫秒：算重复
	assert.True(t, p.HasRecentView("1.2.3.4", "UA1", t0.Add(ViewDedupWindow-time.Millisecond)))
}

func TestRegisterView_ViewsTrackLog(t *testing.T) {
	p := &Post{}
	observers := []struct{ ip, ua string }{
		{"1.1.1.1", "a"}, {"1.1.1.1", "a"}, {"1.1.1.1", "b"}, {"2.2.2.2", "a"}, {"2.2.2.2", "a"},
	}
	for i, o := range observers {
		p.RegisterView(o.ip, o.ua, t0.Add(time.Duration(i)*time.Hour))
	}
	assert.Equal(t, int64(len(p.ViewLogs)), p.Views)
	assert.Equal(t, int64(3), p.Views)
}
