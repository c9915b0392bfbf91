package leetcode

// GraphQL queries against the public LeetCode schema.
const (
	dailyChallengeQuery = `
query questionOfToday {
    activeDailyCodingChallengeQuestion {
        date
        link
        question {
            title
            difficulty
            titleSlug
        }
    }
}`

	problemQuery = `
query questionData($titleSlug: String!) {
    question(titleSlug: $titleSlug) {
        questionId
        questionFrontendId
        title
        titleSlug
        content
        difficulty
        likes
        dislikes
        topicTags {
            name
            slug
        }
        stats
    }
}`

	searchQuery = `
query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
    problemsetQuestionList: questionList(
        categorySlug: $categorySlug
        limit: $limit
        skip: $skip
        filters: $filters
    ) {
        total: totalNum
        questions: data {
            acRate
            difficulty
            frontendQuestionId: questionFrontendId
            paidOnly: isPaidOnly
            title
            titleSlug
            topicTags {
                name
                slug
            }
        }
    }
}`

	userProfileQuery = `
query userPublicProfile($username: String!) {
    matchedUser(username: $username) {
        username
        profile {
            realName
            ranking
            reputation
            countryName
            company
            school
            skillTags
        }
        submitStats {
            acSubmissionNum {
                difficulty
                count
                submissions
            }
            totalSubmissionNum {
                difficulty
                count
                submissions
            }
        }
    }
}`

	recentSubmissionsQuery = `
query recentSubmissions($username: String!, $limit: Int!) {
    recentSubmissionList(username: $username, limit: $limit) {
        title
        titleSlug
        timestamp
        statusDisplay
        lang
        runtime
        memory
        url
    }
}`
)
