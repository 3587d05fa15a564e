package scoring

// Strength category labels.
const (
	LabelReassuring   = "人に安心感を与える"
	LabelPerseverance = "コツコツ続ける力"
	LabelCreative     = "創造力豊か"
	LabelCooperative  = "協調性が高い"
	LabelCompassion   = "思いやりがある"
	LabelPlanning     = "計画性がある"
	LabelLogical      = "論理的思考力"
)

// strengthLabels maps a question id to the strength label it reinforces.
// Questions not listed here never contribute to a strength.
var strengthLabels = map[string]string{
	"q1":  LabelReassuring,
	"q3":  LabelReassuring,
	"q2":  LabelPerseverance,
	"q11": LabelPerseverance,
	"q4":  LabelCreative,
	"q5":  LabelCooperative,
	"q12": LabelCooperative,
	"q7":  LabelCompassion,
	"q15": LabelCompassion,
	"q8":  LabelPlanning,
	"q10": LabelPlanning,
	"q14": LabelLogical,
}

// valueTags maps a value-category question id to the value tag it emits.
var valueTags = map[string]string{
	"q5":  "チームワーク",
	"q6":  "自立性",
	"q7":  "他者貢献",
	"q12": "調和",
	"q15": "成長支援",
}

// Labels returns every strength label in display order.
func Labels() []string {
	return []string{
		LabelReassuring,
		LabelPerseverance,
		LabelCreative,
		LabelCooperative,
		LabelCompassion,
		LabelPlanning,
		LabelLogical,
	}
}

// LabelFor returns the strength label a question feeds, if any.
func LabelFor(questionID string) (string, bool) {
	l, ok := strengthLabels[questionID]
	return l, ok
}

// ValueTagFor returns the value tag a question emits, if any.
func ValueTagFor(questionID string) (string, bool) {
	v, ok := valueTags[questionID]
	return v, ok
}

// ValueTags returns every value tag in catalog order.
func ValueTags() []string {
	return []string{"チームワーク", "自立性", "他者貢献", "調和", "成長支援"}
}
