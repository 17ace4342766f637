// Package paths provides centralized path handling for dotin.
//
// It handles:
//
//   - Dotfiles root and home directory discovery
//   - XDG locations for dotin's own config and log files
//   - Canonicalization (absolute, symlinks resolved) and containment checks
//   - Group name validation
//
// # Environment Variables
//
//   - DOTFILES_ROOT: location of the dotfiles root (default: ~/dotfiles)
//   - HOME: fallback when the user home directory cannot be determined
//
// # Usage
//
//	p, err := paths.New("", "")  // DOTFILES_ROOT or ~/dotfiles, user home
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	groupDir := p.GroupPath("vim")    // /home/user/dotfiles/vim
//
//	canonical, err := paths.Canonicalize(".vimrc")
//	rel, inside := paths.Within(p.HomeDir(), canonical)  // ".vimrc", true
package paths
