package fact

// Kind values a Fact row may carry
const (
	KindFact    = "fact"
	KindLoading = "loading"
)

// ValidKind reports whether kind is one of the two allowed values
func ValidKind(kind string) bool {
	return kind == KindFact || kind == KindLoading
}

// Fact is one fun-fact or loading-line row. Kind is fixed at creation;
// only Text is ever updated afterwards.
type Fact struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Kind string `gorm:"size:16;not null;default:fact;index" json:"kind"`
	Text string `gorm:"size:280;not null" json:"text"`
}

// TableName overrides the GORM table name
func (Fact) TableName() string {
	return "facts"
}
