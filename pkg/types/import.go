package types

// SkipReason explains why a requested file was left untouched.
type SkipReason string

const (
	// SkipInsideDotfiles means the file already lives in the dotfiles root.
	SkipInsideDotfiles SkipReason = "inside_dotfiles"
	// SkipSymlinkIntoDotfiles means the file is a symlink resolving into the
	// dotfiles root, usually one a previous sync created.
	SkipSymlinkIntoDotfiles SkipReason = "symlink_into_dotfiles"
)

// ResolvedFile is an input path after canonicalization.
type ResolvedFile struct {
	// OriginalPath is the path exactly as the caller gave it.
	OriginalPath string `json:"originalPath"`
	// CanonicalPath is absolute with every symlink resolved.
	CanonicalPath string `json:"canonicalPath"`
	// IsSymlink reports whether the entry itself is a symlink.
	IsSymlink bool `json:"isSymlink"`
}

// PlannedMove is a validated rename queued for execution.
type PlannedMove struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// SkippedFile records a file the import intentionally did not move.
type SkippedFile struct {
	Path   string     `json:"path"`
	Reason SkipReason `json:"reason"`
	// Target is the resolved location relative to the dotfiles root, set
	// when Reason is SkipSymlinkIntoDotfiles.
	Target string `json:"target,omitempty"`
}

// Warning is a non-fatal notice about a file that is still imported.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ImportPlan is the outcome of the validation phases. Nothing on disk has
// changed when a plan is returned.
type ImportPlan struct {
	HomeDir      string `json:"homeDir"`
	GroupDir     string `json:"groupDir"`
	DotfilesRoot string `json:"dotfilesRoot"`

	Resolved []ResolvedFile `json:"resolved"`
	Skipped  []SkippedFile  `json:"skipped"`
	Warnings []Warning      `json:"warnings"`
	Moves    []PlannedMove  `json:"moves"`

	// IntermediateDirs is deduplicated (no entry nested in another) and sorted.
	IntermediateDirs []string `json:"intermediateDirs"`
}

// HasWork reports whether executing the plan would move anything.
func (p *ImportPlan) HasWork() bool {
	return p != nil && len(p.Moves) > 0
}

// ImportResult describes what an import did.
type ImportResult struct {
	Plan        *ImportPlan   `json:"plan"`
	Moved       []PlannedMove `json:"moved"`
	CreatedDirs []string      `json:"createdDirs"`
	DryRun      bool          `json:"dryRun"`
}
