package gltfutil

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/sirupsen/logrus"

	"github.com/binzume/quatmath/geom"
)

var ErrInvalidAnimation = errors.New("gltfutil: invalid animation")

func Load(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return doc, nil
}

// Save writes doc as binary glTF if path ends with .glb, JSON glTF otherwise.
func Save(doc *gltf.Document, path string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb":
		err = gltf.SaveBinary(doc, path)
	case ".gltf":
		err = gltf.Save(embedBuffers(doc), path)
	default:
		return errors.Errorf("unsupported output type: %v", ext)
	}
	return errors.Wrapf(err, "save %s", path)
}

// embedBuffers returns a shallow copy of doc whose buffers without URI carry their
// data as base64 data URIs.
func embedBuffers(doc *gltf.Document) *gltf.Document {
	d := *doc
	d.Buffers = make([]*gltf.Buffer, len(doc.Buffers))
	for i, b := range doc.Buffers {
		bb := *b
		if bb.URI == "" && len(bb.Data) > 0 {
			bb.EmbeddedResource()
		}
		d.Buffers[i] = &bb
	}
	return &d
}

// NewRotationDocument returns a document whose default scene holds one node.
func NewRotationDocument(nodeName string) *gltf.Document {
	doc := gltf.NewDocument()
	AddNode(doc, nodeName)
	return doc
}

// AddNode appends a root node with identity rotation and returns its index.
func AddNode(doc *gltf.Document, name string) uint32 {
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Root Scene"})
		doc.Scene = gltf.Index(0)
	}
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Rotation: [4]float32{0, 0, 0, 1}})
	n := uint32(len(doc.Nodes) - 1)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, n)
	return n
}

// AddRotationAnimation adds a linear rotation channel for node to the animation named
// name, creating the animation if needed.
func AddRotationAnimation(doc *gltf.Document, node uint32, name string, times []float32, rotations []geom.Quaternion[float32]) (*gltf.Animation, error) {
	if int(node) >= len(doc.Nodes) {
		return nil, errors.Wrapf(ErrInvalidAnimation, "node %d out of range", node)
	}
	if len(times) == 0 || len(times) != len(rotations) {
		return nil, errors.Wrapf(ErrInvalidAnimation, "%d keys for %d rotations", len(times), len(rotations))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, errors.Wrapf(ErrInvalidAnimation, "key %d is not increasing", i)
		}
	}

	var a *gltf.Animation
	for _, an := range doc.Animations {
		if an.Name == name {
			a = an
		}
	}
	if a == nil {
		a = &gltf.Animation{Name: name}
		doc.Animations = append(doc.Animations, a)
	}

	keysAcc := modeler.WriteAccessor(doc, gltf.TargetNone, times)
	doc.Accessors[uint32(keysAcc)].Min = []float32{times[0]}
	doc.Accessors[uint32(keysAcc)].Max = []float32{times[len(times)-1]}

	samples := make([][4]float32, len(rotations))
	for i, q := range rotations {
		samples[i] = q.ToArray()
	}
	samplesAcc := modeler.WriteTangent(doc, samples)

	a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
		Input:         gltf.Index(uint32(keysAcc)),
		Output:        gltf.Index(uint32(samplesAcc)),
		Interpolation: gltf.InterpolationLinear,
	})
	a.Channels = append(a.Channels, &gltf.Channel{
		Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
		Target: gltf.ChannelTarget{
			Node: gltf.Index(node),
			Path: gltf.TRSRotation,
		},
	})
	logrus.WithFields(logrus.Fields{
		"animation": name,
		"node":      doc.Nodes[node].Name,
		"keys":      len(times),
	}).Debug("rotation channel")
	return a, nil
}

// NodeRotations returns the rotation of every node. Unset rotations read as identity.
func NodeRotations(doc *gltf.Document) []geom.Quaternion[float32] {
	rots := make([]geom.Quaternion[float32], len(doc.Nodes))
	for i, n := range doc.Nodes {
		rots[i] = nodeRotation(n)
	}
	return rots
}

func nodeRotation(n *gltf.Node) geom.Quaternion[float32] {
	if n.Rotation == [4]float32{} {
		return geom.Identity[float32]()
	}
	return geom.NewQuaternionFromArray(n.Rotation)
}

// ChannelRotations reads back the keys and rotations of a rotation channel.
func ChannelRotations(doc *gltf.Document, a *gltf.Animation, ch *gltf.Channel) ([]float32, []geom.Quaternion[float32], error) {
	if ch.Target.Path != gltf.TRSRotation || ch.Sampler == nil || int(*ch.Sampler) >= len(a.Samplers) {
		return nil, nil, errors.Wrap(ErrInvalidAnimation, "not a rotation channel")
	}
	s := a.Samplers[*ch.Sampler]
	if s.Input == nil || s.Output == nil {
		return nil, nil, errors.Wrap(ErrInvalidAnimation, "sampler without accessors")
	}
	if int(*s.Input) >= len(doc.Accessors) || int(*s.Output) >= len(doc.Accessors) {
		return nil, nil, errors.Wrapf(ErrInvalidAnimation, "sampler accessors %d, %d out of range", *s.Input, *s.Output)
	}
	keys, err := modeler.ReadAccessor(doc, doc.Accessors[*s.Input], nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read keys")
	}
	times, ok := keys.([]float32)
	if !ok {
		return nil, nil, errors.Wrapf(ErrInvalidAnimation, "unexpected key type %T", keys)
	}
	samples, err := modeler.ReadTangent(doc, doc.Accessors[*s.Output], nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read rotations")
	}
	rots := make([]geom.Quaternion[float32], len(samples))
	for i, v := range samples {
		rots[i] = geom.NewQuaternionFromArray(v)
	}
	return times, rots, nil
}

// FlattenRotations moves the rotation of every node that has children into its
// children, so that only leaf nodes keep a rotation. Child translations are rotated
// accordingly.
//
// Every child index must name an existing node with no other parent, and the node
// graph must not contain cycles.
func FlattenRotations(doc *gltf.Document, m geom.Mode) error {
	isChild := make([]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) >= len(doc.Nodes) {
				return errors.Wrapf(ErrInvalidAnimation, "node %d: child %d out of range", i, c)
			}
			if isChild[c] {
				return errors.Wrapf(ErrInvalidAnimation, "node %d has more than one parent", c)
			}
			isChild[c] = true
		}
	}
	var roots, stack []uint32
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, uint32(i))
		}
	}
	reached := 0
	for stack = append(stack, roots...); len(stack) > 0; reached++ {
		n := doc.Nodes[stack[len(stack)-1]]
		stack = append(stack[:len(stack)-1], n.Children...)
	}
	if reached != len(doc.Nodes) {
		return errors.Wrapf(ErrInvalidAnimation, "%d nodes are in a cycle", len(doc.Nodes)-reached)
	}
	for _, i := range roots {
		flatten(doc, doc.Nodes[i], m)
	}
	return nil
}

func flatten(doc *gltf.Document, node *gltf.Node, m geom.Mode) {
	if len(node.Children) == 0 {
		return
	}
	a := nodeRotation(node)
	if a != geom.Identity[float32]() {
		node.Rotation = [4]float32{0, 0, 0, 1}
		for _, c := range node.Children {
			child := doc.Nodes[c]
			pos := geom.Rotate[float32](m, a, geom.NewVector3FromArray(child.Translation))
			child.Translation = pos.ToArray()
			child.Rotation = geom.Mul[float32](m, a, nodeRotation(child)).ToArray()
		}
	}
	for _, c := range node.Children {
		flatten(doc, doc.Nodes[c], m)
	}
}
