package dto

// LeaderboardQuery selects the aggregation period. Month 0 means the whole
// year; limit 0 falls back to the service default.
type LeaderboardQuery struct {
	Year  int `form:"year" binding:"required,min=1"`
	Month int `form:"month" binding:"min=0,max=12"`
	Limit int `form:"limit" binding:"min=0"`
}

type SummaryQuery struct {
	Year  int `form:"year" binding:"required,min=1"`
	Month int `form:"month" binding:"min=0,max=12"`
}
