// Package components holds the presentational pieces of the signup page: the
// informational panel, the promo banner, field inputs, the submit button and
// the page shell that composes them with a form snapshot. Components carry no
// form state of their own; they reflect what they are given and report user
// intent through plain callbacks.
package components
