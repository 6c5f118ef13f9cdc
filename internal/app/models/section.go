package models

// GradeDistribution holds the percentage of students that received each
// letter grade in a section. Values are percentages in [0, 100].
type GradeDistribution struct {
	APlus  float64 `json:"aPlus"`
	A      float64 `json:"a"`
	AMinus float64 `json:"aMinus"`
	BPlus  float64 `json:"bPlus"`
	B      float64 `json:"b"`
	BMinus float64 `json:"bMinus"`
	CPlus  float64 `json:"cPlus"`
	C      float64 `json:"c"`
	CMinus float64 `json:"cMinus"`
	DPlus  float64 `json:"dPlus"`
	D      float64 `json:"d"`
	F      float64 `json:"f"`
	W      float64 `json:"w"`
}

// Section represents one historical offering of a course.
type Section struct {
	ID          int64  `json:"id"`
	CourseID    int64  `json:"courseId"`
	Semester    string `json:"semester"`
	SectionCode string `json:"sectionCode"`
	Instructor  string `json:"instructor"`
	Enrollment  *int   `json:"enrollment,omitempty"`

	// Grades is nil when no distribution was recorded for the section.
	Grades *GradeDistribution `json:"grades,omitempty"`
}
