// Package segment decodes the body of TDMS segments: the object list with its
// raw data descriptors and properties, and the raw data values that follow.
//
// Descriptors are remembered per object path in a Registry so that later
// segments can refer back to them. A Decoder ties the pieces together and
// carries the object list from one segment to the next:
//
//	dec := segment.NewDecoder()
//	for offset := int64(0); offset < int64(len(data)); {
//		seg, err := dec.Decode(data, offset)
//		if err != nil {
//			return err
//		}
//		// use seg.Objects and seg.Values
//		offset = seg.LeadIn.End()
//	}
package segment
