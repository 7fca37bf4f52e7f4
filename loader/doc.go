// Package loader reads whole TDMS files into a tree.Root.
//
// A file is a sequence of segments that must be decoded in order: later
// segments reuse raw data descriptors and object lists of earlier ones, and
// append values to channels created earlier. Each load owns its own template
// registry and tree, so independent loads can run concurrently.
//
//	f, err := loader.Open("run.tdms", loader.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	g, _ := f.Root.Group("Measured_Data")
//	ch, _ := g.Channel("Ch_1")
//	samples, ok := tree.ValuesAs[float64](ch)
//
// Any failure aborts the load. Decoding errors are reported as an
// *errs.SegmentError that unwraps to the sentinels of package errs.
package loader
