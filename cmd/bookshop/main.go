package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/example/bookshop/internal/admin"
	"github.com/example/bookshop/internal/cart"
	"github.com/example/bookshop/internal/catalog"
	"github.com/example/bookshop/internal/config"
	"github.com/example/bookshop/internal/domain/book"
	"github.com/example/bookshop/internal/notify"
	"github.com/example/bookshop/internal/session"
	"github.com/example/bookshop/internal/storage"
)

// logNavigator stands in for the router: redirects are just logged.
type logNavigator struct{}

func (logNavigator) Redirect(route string) {
	log.Printf("[Nav] -> %s", route)
}

type app struct {
	cfg     config.Config
	catalog *catalog.Store
	cart    *cart.Store
	session *session.Store
	admin   *admin.Service
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Shop] Failed to load configuration: %v", err)
	}

	durable, err := storage.NewFile(cfg.DataDir)
	if err != nil {
		log.Fatalf("[Shop] Failed to open durable storage: %v", err)
	}
	// The cart is session scoped: it lives in memory and dies with the
	// process, like browser session storage dies with the tab.
	sessionScoped := storage.NewMemory()

	notifier := notify.Logger{}
	nav := logNavigator{}

	catalogStore := catalog.NewStore(book.Seed())
	cartStore := cart.NewStore(sessionScoped, notifier)
	sessionStore := session.NewStore(durable, notifier, nav,
		session.WithDelay(cfg.LoginDelay))
	adminSvc := admin.NewService(catalogStore, notifier, nav)

	log.Println("[Shop] ========================================")
	log.Println("[Shop] Bookshop demo storefront")
	log.Printf("[Shop] Data dir: %s", cfg.DataDir)
	log.Printf("[Shop] Login delay: %s", cfg.LoginDelay)
	log.Println("[Shop] Type 'help' for commands")
	log.Println("[Shop] ========================================")

	a := &app{
		cfg:     cfg,
		catalog: catalogStore,
		cart:    cartStore,
		session: sessionStore,
		admin:   adminSvc,
	}
	a.repl(os.Stdin)
}

func (a *app) repl(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		a.dispatch(fields[0], fields[1:])
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[Shop] Failed to read input: %v", err)
	}
}

func (a *app) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		printHelp()
	case "home":
		a.printBooks(a.catalog.Featured(a.cfg.FeaturedCount))
	case "books":
		a.browse(args)
	case "categories":
		fmt.Println(strings.Join(a.catalog.Categories(), ", "))
	case "book":
		a.show(args)
	case "add":
		a.addToCart(args)
	case "cart":
		a.printCart()
	case "update":
		a.updateQuantity(args)
	case "remove":
		if len(args) == 1 {
			a.cart.Remove(args[0])
		} else {
			fmt.Println("usage: remove <book-id>")
		}
	case "clear":
		a.cart.Clear()
	case "login":
		a.login(args)
	case "register":
		a.register(args)
	case "logout":
		a.session.Logout()
	case "whoami":
		a.whoami()
	case "admin":
		a.adminCmd(args)
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
}

func printHelp() {
	fmt.Println(`home
books [search <text>] [category <name>] [sort title|author|priceAsc|priceDesc]
categories
book <id>
add <id> [qty]
cart | update <id> <qty> | remove <id> | clear
login <email> <password> | register <name> <email> <password> | logout | whoami
admin add <title>|<author>|<price>|<stock>
admin update <id> <title>|<author>|<price>|<stock>
admin delete <id>
quit`)
}

func (a *app) browse(args []string) {
	q := catalog.Query{}
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "search":
			q.Search = args[i+1]
		case "category":
			q.Category = args[i+1]
		case "sort":
			q.SortBy = args[i+1]
		}
	}
	books := a.catalog.Find(q)
	if len(books) == 0 {
		fmt.Println("No books found matching your criteria.")
		return
	}
	a.printBooks(books)
}

func (a *app) printBooks(books []book.Book) {
	for _, b := range books {
		fmt.Printf("%-36s  %-40s  %-20s  $%6.2f  stock %d\n",
			b.ID, b.Title, b.Author, b.Price, b.Stock)
	}
}

func (a *app) show(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: book <id>")
		return
	}
	b, err := a.catalog.Get(args[0])
	if err != nil {
		fmt.Println("The requested book does not exist")
		return
	}
	fmt.Printf("%s by %s\n%s\n%s, %d, %d pages, %s\n$%.2f, %d in stock\n",
		b.Title, b.Author, b.Description, b.Publisher, b.PublishYear, b.Pages, b.ISBN, b.Price, b.Stock)
}

func (a *app) addToCart(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: add <id> [qty]")
		return
	}
	qty := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("quantity must be a number")
			return
		}
		qty = n
	}
	b, err := a.catalog.Get(args[0])
	if err != nil {
		fmt.Println("The requested book does not exist")
		return
	}
	if err := a.cart.Add(b, qty); err != nil {
		fmt.Println(err)
	}
}

func (a *app) updateQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: update <id> <qty>")
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("quantity must be a number")
		return
	}
	a.cart.UpdateQuantity(args[0], qty)
}

func (a *app) printCart() {
	c := a.cart.Get()
	if len(c.Items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, item := range c.Items {
		fmt.Printf("%-40s  x%-3d  $%7.2f\n", item.Book.Title, item.Quantity, item.Subtotal())
	}
	fmt.Printf("%-40s        $%7.2f\n", "Total", c.Total)
}

func (a *app) login(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <email> <password>")
		return
	}
	if _, err := a.session.Login(context.Background(), args[0], args[1]); err != nil {
		fmt.Println(err)
	}
}

func (a *app) register(args []string) {
	if len(args) != 3 {
		fmt.Println("usage: register <name> <email> <password>")
		return
	}
	if _, err := a.session.Register(context.Background(), args[0], args[1], args[2]); err != nil {
		fmt.Println(err)
	}
}

func (a *app) whoami() {
	id, ok := a.session.Current()
	if !ok {
		fmt.Println("anonymous")
		return
	}
	fmt.Printf("%s <%s> admin=%v\n", id.Name, id.Email, id.Admin)
}

// adminCmd gates the inventory commands the way the admin pages do:
// anyone without the admin flag is sent back home.
func (a *app) adminCmd(args []string) {
	id, ok := a.session.Current()
	if !ok || !id.Admin {
		logNavigator{}.Redirect("/")
		fmt.Println("admin access required")
		return
	}
	if len(args) == 0 {
		fmt.Println("usage: admin add|update|delete ...")
		return
	}

	switch args[0] {
	case "add":
		input, err := parseBookSpec(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Println(err)
			return
		}
		if _, err := a.admin.AddBook(input); err != nil {
			fmt.Println(err)
		}
	case "update":
		if len(args) < 2 {
			fmt.Println("usage: admin update <id> <title>|<author>|<price>|<stock>")
			return
		}
		input, err := parseBookSpec(strings.Join(args[2:], " "))
		if err != nil {
			fmt.Println(err)
			return
		}
		input.ID = args[1]
		if _, err := a.admin.UpdateBook(input); err != nil {
			fmt.Println(err)
		}
	case "delete":
		if len(args) != 2 {
			fmt.Println("usage: admin delete <id>")
			return
		}
		if _, err := a.admin.DeleteBook(args[1]); err != nil {
			fmt.Println(err)
		}
	default:
		fmt.Println("usage: admin add|update|delete ...")
	}
}

// parseBookSpec parses "title|author|price|stock".
func parseBookSpec(s string) (book.Book, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return book.Book{}, fmt.Errorf("expected <title>|<author>|<price>|<stock>")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return book.Book{}, fmt.Errorf("price must be a number")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return book.Book{}, fmt.Errorf("stock must be a number")
	}
	return book.Book{
		Title:  strings.TrimSpace(parts[0]),
		Author: strings.TrimSpace(parts[1]),
		Price:  price,
		Stock:  stock,
	}, nil
}
