package config

const SourceFileExt = ".tpp"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".tpp", ".tmpl.cpp"}

// SettingsFileName is the per-project settings file looked up next to
// the processed source files.
const SettingsFileName = "univc.yaml"

// CheckPolicy selects when use-site legality of universal parameters is
// validated: at definition parse time (eager) or at the definition's
// first instantiation (late).
type CheckPolicy int

const (
	EagerCheck CheckPolicy = iota
	LateCheck
)

func (p CheckPolicy) String() string {
	if p == LateCheck {
		return "late"
	}
	return "eager"
}
