package domain

type RoomName string
