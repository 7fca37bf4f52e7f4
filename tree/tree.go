package tree

import (
	"maps"
	"slices"

	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/internal/hash"
	"github.com/arloliu/tdms/segment"
)

// Properties maps property names to typed values.
type Properties = segment.Properties

// Root is the top of the object hierarchy of one file.
type Root struct {
	props      Properties
	data       []any
	groupNames []string
	groups     map[string]*Group
	channels   map[uint64]*Channel
}

// Group is a named collection of channels.
type Group struct {
	name         string
	id           uint64
	props        Properties
	data         []any
	channelNames []string
	channels     map[string]*Channel
}

// Channel holds the values of one channel accumulated over all segments.
//
// Accessors return copies; the tree is only changed by the Assembler.
type Channel struct {
	name     string
	key      string
	id       uint64
	dataType format.DataType
	props    Properties
	values   []any
}

func newRoot() *Root {
	return &Root{
		props:    make(Properties),
		groups:   make(map[string]*Group),
		channels: make(map[uint64]*Channel),
	}
}

// Properties returns a copy of the file properties.
func (r *Root) Properties() Properties {
	return maps.Clone(r.props)
}

// Data returns a copy of the values stored directly on the root object. Usually empty.
func (r *Root) Data() []any {
	return slices.Clone(r.data)
}

// Group returns the group with the given normalized name.
func (r *Root) Group(name string) (*Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// GroupNames returns the group names in the order they first appeared.
func (r *Root) GroupNames() []string {
	return slices.Clone(r.groupNames)
}

// Groups returns the groups in the order they first appeared.
func (r *Root) Groups() []*Group {
	groups := make([]*Group, len(r.groupNames))
	for i, name := range r.groupNames {
		groups[i] = r.groups[name]
	}

	return groups
}

// ChannelByID returns the channel whose key hashes to id.
func (r *Root) ChannelByID(id uint64) (*Channel, bool) {
	ch, ok := r.channels[id]
	return ch, ok
}

// ChannelByKey returns the channel with the given normalized key, e.g. Measured_Data-Ch_1.
func (r *Root) ChannelByKey(key string) (*Channel, bool) {
	return r.ChannelByID(hash.ID(key))
}

// group fetches or creates a group.
func (r *Root) group(name string) *Group {
	if g, ok := r.groups[name]; ok {
		return g
	}

	g := &Group{
		name:     name,
		id:       hash.ID(name),
		props:    make(Properties),
		channels: make(map[string]*Channel),
	}
	r.groups[name] = g
	r.groupNames = append(r.groupNames, name)

	return g
}

// Name returns the normalized group name.
func (g *Group) Name() string {
	return g.name
}

// ID returns the hash of the group name.
func (g *Group) ID() uint64 {
	return g.id
}

// Properties returns a copy of the group properties.
func (g *Group) Properties() Properties {
	return maps.Clone(g.props)
}

// Data returns a copy of the values stored directly on the group object. Usually empty.
func (g *Group) Data() []any {
	return slices.Clone(g.data)
}

// ChannelNames returns the channel names in the order they first appeared.
func (g *Group) ChannelNames() []string {
	return slices.Clone(g.channelNames)
}

// Channel returns the channel with the given normalized name.
func (g *Group) Channel(name string) (*Channel, bool) {
	ch, ok := g.channels[name]
	return ch, ok
}

// Channels returns the channels in the order they first appeared.
func (g *Group) Channels() []*Channel {
	channels := make([]*Channel, len(g.channelNames))
	for i, name := range g.channelNames {
		channels[i] = g.channels[name]
	}

	return channels
}

// Name returns the normalized channel name.
func (c *Channel) Name() string {
	return c.name
}

// Key returns the normalized object key, group and channel joined by '-'.
func (c *Channel) Key() string {
	return c.key
}

// ID returns the hash of the channel key.
func (c *Channel) ID() uint64 {
	return c.id
}

// DataType returns the type of the most recent raw data descriptor, or
// TypeVoid if the channel never had raw data.
func (c *Channel) DataType() format.DataType {
	return c.dataType
}

// Properties returns a copy of the channel properties.
func (c *Channel) Properties() Properties {
	return maps.Clone(c.props)
}

// Values returns a copy of all values of the channel in file order.
// Use Len to size a channel without copying it.
func (c *Channel) Values() []any {
	return slices.Clone(c.values)
}

// Len returns the number of values.
func (c *Channel) Len() int {
	return len(c.values)
}

// ValuesAs returns the channel values as a []T.
// It reports false if any value is not a T.
func ValuesAs[T any](c *Channel) ([]T, bool) {
	out := make([]T, len(c.values))
	for i, v := range c.values {
		t, ok := v.(T)
		if !ok {
			return nil, false
		}
		out[i] = t
	}

	return out, true
}
