// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and page types for the poll site.

# Domain Types

  - Question: poll prompt with a publication date
  - Choice: one answer to a Question with its vote counter
  - QuestionWithChoices: a Question plus its Choices ordered by id

A Question is recently published when its publication date falls within
RecentWindow of now and is not in the future:

	q.WasPublishedRecently(time.Now())

# Page Types

Template data for the rendered pages:

  - IndexPage: latest published questions
  - DetailPage: voting form, with an optional error message
  - ResultsPage: vote tally per choice
  - ErrorPage: 400/404/500 pages
*/
package models
