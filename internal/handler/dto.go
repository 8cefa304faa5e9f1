package handler

type StoryResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Time    int64  `json:"time"`
	Score   int64  `json:"score"`
	Summary string `json:"summary"`
	Image   string `json:"image"`
}

type StoriesResponse struct {
	Count   int             `json:"count"`
	Total   int             `json:"total"`
	Stories []StoryResponse `json:"stories"`
}
