package render

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Infoer

type Infoer interface {
	Info(s string)
}
