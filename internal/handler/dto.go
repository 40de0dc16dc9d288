package handler

// storyEmailRequest - тело запроса на отправку письма о сгенерированной истории.
type storyEmailRequest struct {
	StoryContent  string `json:"storyContent"`
	Genre         string `json:"genre"`
	Theme         string `json:"theme"`
	CharacterType string `json:"characterType"`
	Title         string `json:"title"`
	UserEmail     string `json:"userEmail"`
	UserName      string `json:"userName"`
}

// saveStoryRequest - тело запроса на сохранение истории.
// UserId - непрозрачный идентификатор владельца; сервис его не проверяет.
type saveStoryRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Genre         string `json:"genre"`
	Theme         string `json:"theme"`
	CharacterType string `json:"characterType"`
	UserID        string `json:"userId"`
}

// emailResult - то, что уходит в поле emailResult ответа нотификации.
type emailResult struct {
	ID string `json:"id"`
}
