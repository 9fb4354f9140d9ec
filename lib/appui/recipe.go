// Copyright 2026 The Food Wallet Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foodwallet/foodwallet/lib/gateway"
	"github.com/foodwallet/foodwallet/lib/nav"
)

// recipeLoadingPrompts rotate while suggestions are generated, since
// the call can take a while.
var recipeLoadingPrompts = []string{
	"Checking what's in your pantry...",
	"Looking at what expires first...",
	"Matching ingredients to recipes...",
	"Almost there, plating up ideas...",
}

// recipePromptInterval is how often the loading prompt rotates.
const recipePromptInterval = 3 * time.Second

// recipePromptTickMsg rotates the loading prompt.
type recipePromptTickMsg struct{}

// recipeModel is the suggestion list with a detail view.
type recipeModel struct {
	recipes []gateway.Recipe
	cursor  int
	loading bool
	prompt  int
	err     error

	// showingDetail is true while one recipe's full card is open.
	showingDetail bool
}

func (recipe *recipeModel) reset() {
	*recipe = recipeModel{}
}

// pushRecipe navigates to the recipe screen and starts the fetch.
func (model *Model) pushRecipe() tea.Cmd {
	if !model.navigator.Push(nav.ScreenAIRecipe, nil) {
		return nil
	}
	model.recipe.reset()
	return model.enterRecipes()
}

func (model *Model) enterRecipes() tea.Cmd {
	identity, ok := model.session.Get()
	if !ok {
		return nil
	}
	recipe := &model.recipe
	recipe.loading = true
	recipe.prompt = 0
	recipe.err = nil

	ctx := model.calls.begin(callRecipes)
	client := model.client
	userID := identity.ID
	fetch := func() tea.Msg {
		recipes, err := client.RecipeSuggestions(ctx, userID)
		return recipesMsg{recipes: recipes, err: err}
	}
	rotate := tea.Tick(recipePromptInterval, func(time.Time) tea.Msg {
		return recipePromptTickMsg{}
	})
	return tea.Batch(fetch, rotate)
}

func (model *Model) handleRecipePromptTick() tea.Cmd {
	recipe := &model.recipe
	if !recipe.loading {
		return nil
	}
	recipe.prompt = (recipe.prompt + 1) % len(recipeLoadingPrompts)
	return tea.Tick(recipePromptInterval, func(time.Time) tea.Msg {
		return recipePromptTickMsg{}
	})
}

func (model *Model) handleRecipes(message recipesMsg) {
	model.calls.end(callRecipes)
	recipe := &model.recipe
	recipe.loading = false
	recipe.err = message.err
	if message.err == nil {
		recipe.recipes = message.recipes
		recipe.cursor = 0
	}
}

func (model *Model) handleRecipeKey(message tea.KeyMsg) tea.Cmd {
	recipe := &model.recipe

	if recipe.showingDetail {
		switch message.Type {
		case tea.KeyEsc, tea.KeyEnter:
			recipe.showingDetail = false
		}
		return nil
	}

	switch {
	case message.Type == tea.KeyEsc:
		model.calls.cancel(callRecipes)
		model.navigator.Pop()
	case message.Type == tea.KeyUp:
		if recipe.cursor > 0 {
			recipe.cursor--
		}
	case message.Type == tea.KeyDown:
		if recipe.cursor < len(recipe.recipes)-1 {
			recipe.cursor++
		}
	case message.Type == tea.KeyEnter:
		if recipe.cursor < len(recipe.recipes) {
			recipe.showingDetail = true
		}
	case key.Matches(message, model.keys.Refresh):
		if !recipe.loading {
			return model.enterRecipes()
		}
	}
	return nil
}

func (model *Model) viewRecipe() string {
	recipe := &model.recipe
	styles := model.styles

	var b strings.Builder
	b.WriteString(styles.heading.Render("AI Recipes") + "\n\n")

	switch {
	case recipe.loading:
		b.WriteString(model.spinner.View() + " " + recipeLoadingPrompts[recipe.prompt] + "\n")
	case recipe.err != nil:
		b.WriteString(styles.errorText.Render("Suggestion error: "+recipe.err.Error()) + "\n")
		b.WriteString(styles.muted.Render("ctrl+r to retry") + "\n")
	case len(recipe.recipes) == 0:
		b.WriteString(styles.muted.Render("No suggestions right now. Add some items to your pantry first.") + "\n")
	case recipe.showingDetail:
		b.WriteString(model.viewRecipeDetail(recipe.recipes[recipe.cursor]))
	default:
		for i, suggestion := range recipe.recipes {
			if i == recipe.cursor {
				b.WriteString(styles.heading.Render("> "+suggestion.Title) + "\n")
			} else {
				b.WriteString("  " + suggestion.Title + "\n")
			}
			b.WriteString("    " + styles.muted.Render(truncate(suggestion.Ingredients.String(), 60)) + "\n")
		}
		b.WriteString("\n" + styles.muted.Render("enter details, ctrl+r new ideas, esc back"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// viewRecipeDetail renders one recipe's full card. Instructions come
// back as markdown from the model behind the backend.
func (model *Model) viewRecipeDetail(suggestion gateway.Recipe) string {
	styles := model.styles
	width := model.width - 8
	if width < 30 {
		width = 30
	}

	var card strings.Builder
	card.WriteString(styles.cardTitle.Render(suggestion.Title) + "\n\n")
	card.WriteString(styles.heading.Render("Ingredients") + "\n")
	for _, ingredient := range suggestion.Ingredients {
		card.WriteString("  • " + ingredient + "\n")
	}
	card.WriteString("\n" + styles.heading.Render("Instructions") + "\n")
	card.WriteString(renderMarkdown(suggestion.Instructions, model.theme.Get(), width) + "\n")
	card.WriteString(styles.muted.Render("esc close"))
	return styles.card.Render(card.String())
}
