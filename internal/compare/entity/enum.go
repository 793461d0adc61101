package entity

// Stage is a step of the per-request upload pipeline.
type Stage string

const (
	StageReceived  Stage = "RECEIVED"
	StageValidated Stage = "VALIDATED"
	StageStored    Stage = "STORED"
	StageSorted    Stage = "SORTED"
	StageDiffed    Stage = "DIFFED"
	StageRecorded  Stage = "RECORDED"
	StageResponded Stage = "RESPONDED"
)

// Names of derived artifacts inside an upload's folder.
const (
	SortedPrefix   = "sorted_"
	DifferenceBase = "difference"
)

// SortedName is the artifact name of the sorted copy of original.
func SortedName(original string) string {
	return SortedPrefix + original
}

// DifferenceName is the artifact name of the difference file for extension ext.
func DifferenceName(ext string) string {
	return DifferenceBase + "." + ext
}
