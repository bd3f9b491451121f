package experiment

// InstanceSeed returns the seed of instance trial in group n of a run seeded
// with base. Distinct (n, trial) pairs give unrelated streams; the mapping is
// fixed, so rerunning with the same base reproduces every instance whatever
// the worker count.
//
// Complexity: O(1).
func InstanceSeed(base int64, n, trial int) int64 {
	return mixSeed(base, uint64(uint32(n))<<32|uint64(uint32(trial)))
}

// mixSeed is a SplitMix64 finalizer over parent and stream.
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
