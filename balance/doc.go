// Package balance implements the categorical balance check for candidate
// assignments.
//
// For each nominal criterion the checker builds the group-by-category
// contingency table of a candidate assignment. A category column's
// imbalance is the difference between its highest and lowest count across
// groups, a criterion's imbalance is the maximum over its columns, and with
// two criteria the joint distribution is checked the same way over every
// (category, category) slice of the three-way table. A candidate passes
// when every imbalance is within its caller-supplied tolerance.
//
// Imbalance depends only on counts, never on which group carries which
// label, so the check is symmetric under relabeling of group identities.
package balance
