package model

import "time"

// ViewDedupWindow 同一访客在窗口内的重复浏览不计数
const ViewDedupWindow = 24 * time.Hour

// ViewLog 浏览记录，只追加
type ViewLog struct {
	IP        string    `bson:"ip" json:"ip"`
	UserAgent string    `bson:"user_agent" json:"userAgent"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// HasRecentView 窗口内是否已有同一 IP + UserAgent 的记录，边界时刻不算
func (p *Post) HasRecentView(ip, userAgent string, now time.Time) bool {
	cutoff := now.Add(-ViewDedupWindow)
	for _, v := range p.ViewLogs {
		if v.IP == ip && v.UserAgent == userAgent && v.Timestamp.After(cutoff) {
			return true
		}
	}
	return false
}

// RegisterView 浏览计数与日志追加的唯一入口，返回是否计数
func (p *Post) RegisterView(ip, userAgent string, now time.Time) (ViewLog, bool) {
	if p.HasRecentView(ip, userAgent, now) {
		return ViewLog{}, false
	}
	entry := ViewLog{IP: ip, UserAgent: userAgent, Timestamp: now}
	p.Views++
	p.ViewLogs = append(p.ViewLogs, entry)
	return entry, true
}
