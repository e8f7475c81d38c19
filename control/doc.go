// Package control provides the BSV control block framing used to store
// integers on the wire.
//
// Every field starts with a control block. A prefix code in the high bits of
// the first byte selects the block type and the remaining bits carry data or
// a size. Small values are packed directly into the control block.
//
//	| first byte  | type           | payload                                  |
//	|-------------|----------------|------------------------------------------|
//	| 1xxx_xxxx   | Data           | 7 bits in the block                      |
//	| 01zz_zzzz   | Data Size      | z+1 bytes (1 to 64) follow               |
//	| 001x_xxxx   | Data + 1       | 5 bits in the block and 1 byte follows   |
//	| 0001_xxxx   | Data + 2       | 4 bits in the block and 2 bytes follow   |
//	| 0000_1sss   | Data Size Size | s+1 size bytes, then size+1 data bytes   |
//	| 0000_0110   | Unbounded      | fields until the matching End            |
//	| 0000_0100   | End            | closes the innermost Unbounded container |
//	| 0000_0001   | Empty          | zero length value                        |
//	| 0000_0000   | Null           | no value (nullable fields)               |
//
// Sizes are stored minus one to maximize their range. Zero length data is
// written as an Empty block.
//
// The encoder always picks the shortest block for the data it is given. The
// decoder reads blocks lazily: data is only read from the underlying reader
// when requested, and unread fields are skipped by Next.
package control
