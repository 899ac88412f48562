package mitab

// RelationKind is the simplified meaning of an interaction type.
type RelationKind byte

const (
	Unclassified RelationKind = iota // Not in our table. Not an error.
	Increases
	Association
	DirectlyIncreases
)

// RelationKinds lists every kind, Unclassified first.
var RelationKinds = [...]RelationKind{Unclassified, Increases, Association, DirectlyIncreases}

var kindNames = [...]string{
	Unclassified:      "unclassified",
	Increases:         "increases",
	Association:       "association",
	DirectlyIncreases: "directlyIncreases",
}

func (k RelationKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown relation"
}

const psiMI = "psi-mi"

// vocabulary is keyed by the parsed token, so it does not matter if the
// producer quoted the MI code or not.
var vocabulary = map[InteractionType]RelationKind{
	{psiMI, "MI:0794", "synthetic genetic interaction defined by inequality"}:   Increases,
	{psiMI, "MI:0799", "additive genetic interaction defined by inequality"}:    Increases,
	{psiMI, "MI:0796", "suppressive genetic interaction defined by inequality"}: Increases,

	{psiMI, "MI:0403", "colocalization"}:       Association,
	{psiMI, "MI:0914", "association"}:          Association,
	{psiMI, "MI:0915", "physical association"}: Association,

	{psiMI, "MI:0407", "direct interaction"}: DirectlyIncreases,
}

// Classify returns Unclassified for anything not in the table.
func Classify(it InteractionType) RelationKind { return vocabulary[it] }

// ClassifyToken works on the raw text of one interaction type. A token
// that does not parse is just Unclassified.
func ClassifyToken(tok string) RelationKind {
	it, err := ParseInteractionType(tok)
	if err != nil {
		return Unclassified
	}
	return Classify(it)
}
