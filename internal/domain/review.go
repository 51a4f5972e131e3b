package domain

type Review struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	GameID    int32  `json:"game_id"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}
