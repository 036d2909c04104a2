// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll site.

# QuestionHandler

QuestionHandler serves the four public pages. It is created with the
database and config:

	questions := handlers.NewQuestionHandler(db, cfg)

	GET  /               → Index   (latest five published questions)
	GET  /{id}/          → Detail  (voting form)
	GET  /{id}/results/  → Results (vote tally)
	POST /{id}/vote/     → Vote    (form field "choice")

# Results

Each handler method decides on a Result and respond writes it:

	KindFound    → 200 with the page
	KindInvalid  → 400 with "No choice selected."; the voting page only for votable questions
	KindRedirect → 302 (after a counted vote, to the results page)
	KindNotFound → 404
	KindError    → 500, logged

Detail and Results only show questions that are published and have more
than one choice; anything else is a 404. Vote accepts any existing
question, and counts the vote with a single UPDATE so concurrent votes on
the same choice are all kept.
*/
package handlers
