package model

// ActivityLog 送往 Fluentd 的表單/後台操作事件
type ActivityLog struct {
	RequestID   string `bson:"request_id,omitempty" json:"request_id"`
	ProjectName string `bson:"project_name,omitempty" json:"project_name,omitempty"`
	Actor       string `bson:"actor,omitempty" json:"actor,omitempty"` // admin id 或 employee id
	Action      string `bson:"action" json:"action"`                   // submitted / verified / marked ...
	Entity      string `bson:"entity" json:"entity"`                   // application / membership / attendance ...
	EntityID    string `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	Detail      string `bson:"detail,omitempty" json:"detail,omitempty"`
	Version     string `bson:"version" json:"version"`
	LoggedAt    string `bson:"logged_at" json:"logged_at"`
}
