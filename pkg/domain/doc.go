// Package domain contains the core domain entities used by the advisor: the
// catalog of candidate products, user profiles built from questionnaire answers,
// and the recommendations produced for them. These types are intentionally free
// of infrastructure concerns so they can be shared across packages.
package domain
