// SPDX-License-Identifier: EPL-2.0

package adpcm

const (
	// BlockSize is the number of compressed bytes decoded per call.
	BlockSize = 128

	// SamplesPerBlock is the number of samples a full block decodes to.
	SamplesPerBlock = 1 + (BlockSize-headerSize)/chunkSize*samplesPerChunk

	// MaxIndex is the highest valid step table index.
	MaxIndex = len(stepTable) - 1

	headerSize      = 4
	chunkSize       = 4
	samplesPerChunk = 2 * chunkSize
)

var stepTable = [89]int32{
	7, 8, 9, 10, 11, 12, 13, 14,
	16, 17, 19, 21, 23, 25, 28, 31,
	34, 37, 41, 45, 50, 55, 60, 66,
	73, 80, 88, 97, 107, 118, 130, 143,
	157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658,
	724, 796, 876, 963, 1060, 1166, 1282, 1411,
	1552, 1707, 1878, 2066, 2272, 2499, 2749, 3024,
	3327, 3660, 4026, 4428, 4871, 5358, 5894, 6484,
	7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794,
	32767,
}

// indexTable is indexed by the magnitude bits of a code.
var indexTable = [8]int{-1, -1, -1, -1, 2, 4, 6, 8}

// Step returns the quantizer step for index, clamping index to the table.
func Step(index int) int32 {
	return stepTable[clampIndex(index)]
}

// NextIndex returns the step index that follows index after code.
func NextIndex(index int, code byte) int {
	return clampIndex(index + indexTable[code&7])
}
