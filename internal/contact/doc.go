// Package contact validates contact form submissions and delivers them
// through a chain of best-effort fallbacks.
//
// Validation always runs first; a submission with an empty field or a
// malformed email address never reaches a delivery step.
//
// A Chain tries each Step once, in order:
//
//  1. EmailJS: the hosted email API, when its three identifiers are set.
//  2. SMTP: direct delivery, when credentials are set.
//  3. Mailto: opens a draft in the user's mail client (or, on the web,
//     hands the link back to the browser).
//  4. Clipboard: copies the message so the user can paste it.
//
// A step that is not configured returns ErrUnavailable and is skipped
// quietly. Any other error is logged and the next step runs. There are no
// retries. The Outcome carries the toast to show.
package contact
