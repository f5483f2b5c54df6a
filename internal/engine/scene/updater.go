package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hierarchy/internal/engine/anim"
)

// ErrUnknownNode is returned when binding a driver to a node not in the graph.
var ErrUnknownNode = errors.New("unknown node")

// Channel selects the translation component an oscillator drives.
type Channel int

// Translation channels.
const (
	ChannelX Channel = iota
	ChannelY
	ChannelZ
)

// Binding describes how an oscillator's value reaches its node.
type Binding struct {
	Channel Channel
	// Amplitude scales the oscillator value before it is added to the
	// translation component the node had when bound.
	Amplitude float32
	// When Facing is set, the node's rotation angle is FaceLower while the
	// oscillator heads for its lower limit and FaceUpper otherwise.
	Facing    bool
	FaceLower float32
	FaceUpper float32
}

type oscillatorBinding struct {
	id   NodeID
	node *Node
	osc  anim.Oscillator
	bind Binding
	base float32
}

type spinnerBinding struct {
	id   NodeID
	node *Node
	spin anim.Spinner
}

// Updater advances the scene's motion drivers once per frame and writes the
// results into node transforms.
type Updater struct {
	graph       *Graph
	oscillators []oscillatorBinding
	spinners    []spinnerBinding
}

// NewUpdater creates an updater with no drivers.
func NewUpdater(g *Graph) *Updater {
	return &Updater{graph: g}
}

// AddOscillator drives node id's translation with osc.
func (u *Updater) AddOscillator(id NodeID, osc anim.Oscillator, b Binding) error {
	n := u.graph.Node(id)
	if n == nil {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	u.oscillators = append(u.oscillators, oscillatorBinding{
		id:   id,
		node: n,
		osc:  osc,
		bind: b,
		base: component(n, b.Channel),
	})
	return nil
}

// AddSpinner drives node id's rotation angle with spin.
func (u *Updater) AddSpinner(id NodeID, spin anim.Spinner) error {
	n := u.graph.Node(id)
	if n == nil {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	u.spinners = append(u.spinners, spinnerBinding{id: id, node: n, spin: spin})
	return nil
}

// Update advances every driver by one tick, each increment scaled by
// speed, unless enabled is false. A disabled frame changes nothing and
// is not made up later.
func (u *Updater) Update(enabled bool, speed float32) {
	if !enabled {
		return
	}
	for i := range u.oscillators {
		u.oscillators[i].osc.Tick(speed)
	}
	for i := range u.spinners {
		u.spinners[i].spin.Tick(speed)
	}
	u.apply()
}

// Oscillator returns the current state of the oscillator bound to id.
func (u *Updater) Oscillator(id NodeID) (anim.Oscillator, bool) {
	for _, b := range u.oscillators {
		if b.id == id {
			return b.osc, true
		}
	}
	return anim.Oscillator{}, false
}

// Spinner returns the current state of the spinner bound to id.
func (u *Updater) Spinner(id NodeID) (anim.Spinner, bool) {
	for _, b := range u.spinners {
		if b.id == id {
			return b.spin, true
		}
	}
	return anim.Spinner{}, false
}

// apply writes driver state into the bound transforms.
func (u *Updater) apply() {
	for i := range u.oscillators {
		b := &u.oscillators[i]
		setComponent(b.node, b.bind.Channel, b.base+b.bind.Amplitude*b.osc.Value)
		if b.bind.Facing {
			if b.osc.TowardLower {
				b.node.Local.Angle = b.bind.FaceLower
			} else {
				b.node.Local.Angle = b.bind.FaceUpper
			}
		}
	}
	for i := range u.spinners {
		b := &u.spinners[i]
		b.node.Local.Angle = b.spin.Angle
	}
}

func component(n *Node, c Channel) float32 {
	switch c {
	case ChannelX:
		return n.Local.Translation.X
	case ChannelY:
		return n.Local.Translation.Y
	default:
		return n.Local.Translation.Z
	}
}

func setComponent(n *Node, c Channel, v float32) {
	switch c {
	case ChannelX:
		n.Local.Translation.X = v
	case ChannelY:
		n.Local.Translation.Y = v
	default:
		n.Local.Translation.Z = v
	}
}

// Motion parameters of the scene's animated nodes.
const (
	translationAmplitude = 0.1
	spinDegreesPerTick   = 1
)

type oscillatorSetup struct {
	id           NodeID
	lower, upper float32
	step         float32
	bind         Binding
}

var sceneOscillators = []oscillatorSetup{
	{id: NodeSun, lower: -10, upper: 10, step: 0.01, bind: Binding{Channel: ChannelX}},
	{id: NodeAxe, lower: -1, upper: 1, step: 0.1, bind: Binding{Channel: ChannelY}},
	{id: NodeBird, lower: 1, upper: 2, step: 0.05, bind: Binding{Channel: ChannelY}},
	{id: NodeFemale, lower: -20, upper: 0, step: 0.1,
		bind: Binding{Channel: ChannelZ, Facing: true, FaceLower: 180, FaceUpper: 0}},
	{id: NodeBunny, lower: -5, upper: 5, step: 0.1,
		bind: Binding{Channel: ChannelX, Facing: true, FaceLower: -180, FaceUpper: 0}},
}

var sceneSpinners = []NodeID{NodeDragon, NodeStatue, NodeAxe, NodeBird, NodeSun}

// newSceneUpdater binds the drivers of the scene built by BuildHierarchy.
// Every oscillator starts at 0 heading for its lower limit.
func newSceneUpdater(g *Graph) (*Updater, error) {
	u := NewUpdater(g)
	for _, s := range sceneOscillators {
		osc, err := anim.NewOscillator(s.lower, s.upper, s.step, 0, true)
		if err != nil {
			return nil, fmt.Errorf("oscillator %s: %w", s.id, err)
		}
		bind := s.bind
		bind.Amplitude = translationAmplitude
		if err := u.AddOscillator(s.id, osc, bind); err != nil {
			return nil, err
		}
	}
	for _, id := range sceneSpinners {
		if err := u.AddSpinner(id, anim.Spinner{Speed: spinDegreesPerTick}); err != nil {
			return nil, err
		}
	}
	return u, nil
}
