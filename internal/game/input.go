package game

type IntentKind int

const (
	IntentStop IntentKind = iota
	IntentUp
	IntentDown
	// IntentTarget places the paddle center at an absolute board y.
	IntentTarget
)

// Intent is a normalized paddle command from the input adapter.
type Intent struct {
	Kind    IntentKind
	TargetY float64
}

func Stop() Intent { return Intent{Kind: IntentStop} }
func Up() Intent   { return Intent{Kind: IntentUp} }
func Down() Intent { return Intent{Kind: IntentDown} }

func Target(y float64) Intent { return Intent{Kind: IntentTarget, TargetY: y} }

// InputCell holds the latest intent. Input callbacks write it whenever they
// fire; the match samples it once per tick.
type InputCell struct {
	latest Intent
}

func (c *InputCell) Set(in Intent) { c.latest = in }

func (c *InputCell) Sample() Intent { return c.latest }

func (c *InputCell) Reset() { c.latest = Stop() }
