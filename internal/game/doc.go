// Package game implements a simplified game of 21.
//
// Each player is dealt one hidden card and one visible card. Players then
// take turns, in seat order, deciding whether to take another visible card
// or to pass. Passing is permanent. When a full round goes by with nobody
// drawing the game is over, and the player closest to 21 without going over
// wins. A tie for the best score, or everybody going over, means nobody
// wins.
//
// # Basic Usage
//
//	players := []*game.Player{
//	    game.NewPlayer("You", game.NewHumanAgent(prompt)),
//	    game.NewPlayer("Paul", game.NewScriptedAgent()),
//	    game.NewPlayer("Tim", game.NewScriptedAgent()),
//	    game.NewPlayer("Lauren", game.NewScriptedAgent()),
//	}
//	dealer := game.NewDealer(players, deck.NewDeck(randutil.New(seed)), logger)
//	outcome, err := dealer.Play()
//
// # Information hiding
//
// Agents never receive a *Player. The dealer hands each player a View
// holding its own score and only the visible totals of its opponents, so a
// decision cannot depend on another player's hidden card.
//
// # Events
//
// Every notification (cards taken, passes, the final result) is published
// on the dealer's EventBus. Transcripts, logs and tests subscribe to it;
// the game logic itself never prints.
package game
