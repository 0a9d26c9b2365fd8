package model

// TimeSlot is one weekly-recurring block: a day of week (0 = Sunday through
// 6 = Saturday) plus "HH:mm" start and end clock times.
type TimeSlot struct {
	Day       int    `bson:"day" json:"day"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}
