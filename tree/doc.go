// Package tree holds the root/group/channel hierarchy of a TDMS file and the
// Assembler that builds it from decoded segments.
//
// Objects are addressed by their normalized keys: /'Measured Data'/'Ch 1'
// is channel Ch_1 of group Measured_Data, with key Measured_Data-Ch_1.
package tree
