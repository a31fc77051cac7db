package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToWatchers(surveyID string, msgType string, payload interface{})
	DisconnectSurvey(surveyID string)
}
