package analysis

import "time"

// StageID identifies one of the six fixed pipeline stages
type StageID string

const (
	StageUpload      StageID = "step-upload"
	StageExtraction  StageID = "step-extraction"
	StageNLTK        StageID = "step-nltk"
	StageHuggingFace StageID = "step-huggingface"
	StageTensorFlow  StageID = "step-tensorflow"
	StageCompletion  StageID = "step-completion"
)

// ProgressTicks is the number of linear steps a progress bar advances through.
const ProgressTicks = 100

// StageSpec is the static description the runner executes.
type StageSpec struct {
	ID       StageID
	Name     string
	Duration time.Duration
	// ProgressBar is empty for stages that only wait.
	ProgressBar string
}

func (s StageSpec) HasProgress() bool { return s.ProgressBar != "" }

// DefaultStages returns the fixed six-stage sequence.
func DefaultStages() []StageSpec {
	return []StageSpec{
		{ID: StageUpload, Name: "Document Upload", Duration: 500 * time.Millisecond},
		{ID: StageExtraction, Name: "Text Extraction", Duration: 2000 * time.Millisecond, ProgressBar: "extractionProgress"},
		{ID: StageNLTK, Name: "NLP Processing", Duration: 1500 * time.Millisecond, ProgressBar: "nltkProgress"},
		{ID: StageHuggingFace, Name: "AI Analysis", Duration: 3000 * time.Millisecond, ProgressBar: "huggingfaceProgress"},
		{ID: StageTensorFlow, Name: "ML Classification", Duration: 2500 * time.Millisecond, ProgressBar: "tensorflowProgress"},
		{ID: StageCompletion, Name: "Analysis Complete", Duration: 500 * time.Millisecond},
	}
}

// StepStatus enum
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepActive    StepStatus = "active"
	StepCompleted StepStatus = "completed"
)

// Step is the per-session view of a stage
type Step struct {
	ID          StageID    `json:"id"`
	Name        string     `json:"name"`
	Status      StepStatus `json:"status"`
	Progress    int        `json:"progress"`
	HasProgress bool       `json:"has_progress"`
}

func (s Step) Completed() bool { return s.Status == StepCompleted }

// NewSteps builds a fresh, all-pending step list.
func NewSteps() []Step {
	specs := DefaultStages()
	steps := make([]Step, 0, len(specs))
	for _, sp := range specs {
		steps = append(steps, Step{ID: sp.ID, Name: sp.Name, Status: StepPending, HasProgress: sp.HasProgress()})
	}
	return steps
}
