package leetcode

// TopicTag labels a problem with a topic such as "array" or
// "dynamic-programming".
type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DailyChallenge is today's daily coding challenge.
type DailyChallenge struct {
	Title      string `json:"questionTitle"`
	Difficulty string `json:"difficulty"`
	TitleSlug  string `json:"titleSlug"`
	Date       string `json:"date"`
	Link       string `json:"link"`
}

// Problem holds the details of a single problem.
type Problem struct {
	QuestionID         string     `json:"questionId"`
	QuestionFrontendID string     `json:"questionFrontendId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	Content            string     `json:"content"`
	Difficulty         string     `json:"difficulty"`
	Likes              int        `json:"likes"`
	Dislikes           int        `json:"dislikes"`
	TopicTags          []TopicTag `json:"topicTags"`
	Stats              string     `json:"stats"`
}

// ProblemSummary is a problem as it appears in search results.
type ProblemSummary struct {
	FrontendQuestionID string     `json:"frontendQuestionId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	Difficulty         string     `json:"difficulty"`
	AcRate             float64    `json:"acRate"`
	PaidOnly           bool       `json:"paidOnly"`
	TopicTags          []TopicTag `json:"topicTags"`
}

// SearchResult is a page of problem search results.
type SearchResult struct {
	Total     int              `json:"total"`
	Questions []ProblemSummary `json:"questions"`
}

// SubmissionCount aggregates submissions at one difficulty level.
type SubmissionCount struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

// UserProfile is a user's public profile and submission statistics.
type UserProfile struct {
	Username string `json:"username"`
	Profile  struct {
		RealName    string   `json:"realName"`
		Ranking     int      `json:"ranking"`
		Reputation  int      `json:"reputation"`
		CountryName string   `json:"countryName"`
		Company     string   `json:"company"`
		School      string   `json:"school"`
		SkillTags   []string `json:"skillTags"`
	} `json:"profile"`
	SubmitStats struct {
		AcSubmissionNum    []SubmissionCount `json:"acSubmissionNum"`
		TotalSubmissionNum []SubmissionCount `json:"totalSubmissionNum"`
	} `json:"submitStats"`
}

// Submission is one entry in a user's recent submission list.
type Submission struct {
	Title         string `json:"title"`
	TitleSlug     string `json:"titleSlug"`
	Timestamp     string `json:"timestamp"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
	Runtime       string `json:"runtime"`
	Memory        string `json:"memory"`
	URL           string `json:"url"`
}

// Submissions is a user's recent submission list.
type Submissions struct {
	Username    string       `json:"username"`
	Submissions []Submission `json:"submissions"`
}
