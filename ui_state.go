package main

type uiState struct {
	noticeMsg  string
	noticeType string
	noticeSeq  int
	reloadSeq  int
	lastClick  string
}
