package tree

import (
	"fmt"

	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/internal/collision"
	"github.com/arloliu/tdms/internal/hash"
	"github.com/arloliu/tdms/internal/pathkey"
	"github.com/arloliu/tdms/segment"
	"go.uber.org/zap"
)

// Assembler folds decoded segments into a Root.
//
// Only the Assembler mutates the tree it builds: properties are merged with
// later values winning, values are appended, and nothing is ever removed or
// reordered.
//
// Note: The Assembler is NOT thread-safe.
type Assembler struct {
	root     *Root
	rootSeen bool
	tracker  *collision.Tracker
	strict   bool
	logger   *zap.Logger
}

// NewAssembler creates an Assembler with an empty tree.
//
// Parameters:
//   - logger: Receives a warning for every pair of raw paths sharing a key; nil disables logging
//   - strict: Fail with ErrPathCollision instead of merging objects whose paths share a key
func NewAssembler(logger *zap.Logger, strict bool) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Assembler{
		root:    newRoot(),
		tracker: collision.NewTracker(),
		strict:  strict,
		logger:  logger,
	}
}

// Root returns the tree built so far.
func (a *Assembler) Root() *Root {
	return a.root
}

// Keys returns the number of distinct normalized keys declared so far.
func (a *Assembler) Keys() int {
	return a.tracker.Count()
}

// Collisions returns the number of declared raw paths that were merged into
// an object of another raw path.
func (a *Assembler) Collisions() int {
	return a.tracker.Collisions()
}

// Add merges the objects and values of seg into the tree.
//
// Returns:
//   - error: ErrDuplicateRoot, ErrInvalidPath or ErrPathCollision
func (a *Assembler) Add(seg *segment.Segment) error {
	for i := range seg.Objects {
		obj := &seg.Objects[i]

		var values []any
		if i < len(seg.Values) {
			values = seg.Values[i]
		}

		if err := a.addObject(obj, values); err != nil {
			return err
		}
	}

	return nil
}

func (a *Assembler) addObject(obj *segment.Object, values []any) error {
	key := pathkey.Parse(obj.Path)

	if obj.Declared {
		if err := a.track(key); err != nil {
			return err
		}
	}

	switch key.Kind {
	case pathkey.KindRoot:
		if obj.Declared {
			if a.rootSeen {
				return fmt.Errorf("%w: %q", errs.ErrDuplicateRoot, obj.Path)
			}
			a.rootSeen = true
		}
		a.root.props.Merge(obj.Properties)
		a.root.data = append(a.root.data, values...)

	case pathkey.KindGroup:
		g := a.root.group(key.Group)
		g.props.Merge(obj.Properties)
		g.data = append(g.data, values...)

	case pathkey.KindChannel:
		ch := a.channel(key)
		ch.props.Merge(obj.Properties)
		ch.values = append(ch.values, values...)
		if obj.Descriptor != nil {
			ch.dataType = obj.Descriptor.DataType
		}

	default:
		return fmt.Errorf("%w: %q normalizes to %q", errs.ErrInvalidPath, obj.Path, key.Clean)
	}

	return nil
}

// channel fetches or creates a channel and its parent group.
func (a *Assembler) channel(key pathkey.Key) *Channel {
	g := a.root.group(key.Group)
	if ch, ok := g.channels[key.Channel]; ok {
		return ch
	}

	ch := &Channel{
		name:  key.Channel,
		key:   key.Clean,
		id:    hash.ID(key.Clean),
		props: make(Properties),
	}
	g.channels[key.Channel] = ch
	g.channelNames = append(g.channelNames, key.Channel)
	a.root.channels[ch.id] = ch

	return ch
}

func (a *Assembler) track(key pathkey.Key) error {
	c, collided := a.tracker.Track(key.Clean, key.Raw)
	if !collided {
		return nil
	}

	if a.strict {
		return fmt.Errorf("%w: %q and %q both normalize to %q", errs.ErrPathCollision, c.Existing, c.Raw, c.Key)
	}

	a.logger.Warn("object paths share a normalized key, merging",
		zap.String("key", c.Key),
		zap.String("path", c.Raw),
		zap.String("existing", c.Existing),
	)

	return nil
}
