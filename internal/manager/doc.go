package manager

// Package manager implements the animation set manager: the merged,
// ordered view of both animation roots, cycling, permutation-validated
// reordering, and the two-phase delete that keeps at least one animation
// alive and sequences handle release before file removal.
